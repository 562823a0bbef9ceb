package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/events"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/services"
	"github.com/tannehbartee/dujar-system/utils"
)

type ExpenseController struct {
	DB      *gorm.DB
	Service *services.LedgerService
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db, Service: services.NewLedgerService(db)}
}

// GetAllExpenses -> newest expense date first, paginated.
func (ec *ExpenseController) GetAllExpenses(c *gin.Context) {
	page, perPage, offset := pagination(c)

	var total int64
	if err := ec.DB.Model(&models.Expense{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var expenses []models.Expense
	if err := ec.DB.Preload("Booking").Preload("Facility").Preload("Event").Preload("Customer").
		Order("expense_date DESC").
		Limit(perPage).Offset(offset).
		Find(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of expenses", gin.H{
		"expenses": expenses,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

// GetExpenseForm -> reference candidates and the fixed category set.
func (ec *ExpenseController) GetExpenseForm(c *gin.Context) {
	var (
		bookings   []models.Booking
		facilities []models.Facility
		eventTypes []models.Event
		customers  []models.Customer
	)
	if err := ec.DB.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ec.DB.Order("name").Find(&facilities).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ec.DB.Order("name").Find(&eventTypes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ec.DB.Order("name").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "New expense form data", gin.H{
		"bookings":   bookings,
		"facilities": facilities,
		"events":     eventTypes,
		"customers":  customers,
		"categories": models.ExpenseCategories,
	})
}

// CreateExpense -> append-only ledger entry; booking state untouched.
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var req struct {
		BookingID     *uint   `json:"booking_id" form:"booking_id"`
		FacilityID    *uint   `json:"facility_id" form:"facility_id"`
		EventID       *uint   `json:"event_id" form:"event_id"`
		CustomerID    *uint   `json:"customer_id" form:"customer_id"`
		ExpenseDate   string  `json:"expense_date" form:"expense_date" binding:"required"`
		Category      string  `json:"category" form:"category" binding:"required"`
		Description   string  `json:"description" form:"description" binding:"required"`
		Amount        float64 `json:"amount" form:"amount" binding:"required"`
		CurrencyType  string  `json:"currency_type" form:"currency_type"`
		PaymentMethod string  `json:"payment_method" form:"payment_method"`
		ReceiptNumber string  `json:"receipt_number" form:"receipt_number"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.CurrencyType == "" {
		req.CurrencyType = models.CurrencyUSD
	}

	date, err := services.ParseDate(req.ExpenseDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("expense_date must be YYYY-MM-DD"))
		return
	}

	expense, err := ec.Service.RecordExpense(services.RecordExpenseInput{
		BookingID:     req.BookingID,
		FacilityID:    req.FacilityID,
		EventID:       req.EventID,
		CustomerID:    req.CustomerID,
		ExpenseDate:   date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.CurrencyType,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: req.ReceiptNumber,
		RecordedBy:    sessionUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrDescriptionMissing),
			errors.Is(err, services.ErrUnknownCurrency),
			errors.Is(err, services.ErrNonPositiveAmount):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("expense recorded (ID=%d) category=%s %s %.2f",
		expense.ID, expense.Category, expense.CurrencyType, req.Amount)
	events.BroadcastExpenseRecorded(*expense)

	utils.RespondJSON(c, http.StatusCreated, "Expense entry added successfully!", expense)
}
