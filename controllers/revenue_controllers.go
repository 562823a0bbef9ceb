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

type RevenueController struct {
	DB      *gorm.DB
	Service *services.BookingService
}

func NewRevenueController(db *gorm.DB) *RevenueController {
	return &RevenueController{DB: db, Service: services.NewBookingService(db)}
}

// GetAllRevenue -> newest payment date first, paginated.
func (rc *RevenueController) GetAllRevenue(c *gin.Context) {
	page, perPage, offset := pagination(c)

	var total int64
	if err := rc.DB.Model(&models.Revenue{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var entries []models.Revenue
	if err := rc.DB.Preload("Booking.Customer").Preload("Booking.Facility").
		Order("payment_date DESC").
		Limit(perPage).Offset(offset).
		Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of revenue entries", gin.H{
		"revenue_entries": entries,
		"page":            page,
		"per_page":        perPage,
		"total":           total,
	})
}

// GetRevenueForm -> bookings still owing money, for the payment form.
func (rc *RevenueController) GetRevenueForm(c *gin.Context) {
	var open []models.Booking
	if err := rc.DB.Preload("Customer").Preload("Facility").
		Where("payment_status IN ?", []string{models.PaymentPending, models.PaymentPartial}).
		Order("booking_date").
		Find(&open).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "New revenue form data", gin.H{
		"bookings": open,
	})
}

// CreateRevenue -> records a payment and reconciles the booking's
// advance and payment status in one transaction.
func (rc *RevenueController) CreateRevenue(c *gin.Context) {
	var req struct {
		BookingID     uint    `json:"booking_id" form:"booking_id" binding:"required"`
		PaymentDate   string  `json:"payment_date" form:"payment_date" binding:"required"`
		Amount        float64 `json:"amount" form:"amount" binding:"required"`
		CurrencyType  string  `json:"currency_type" form:"currency_type"`
		PaymentMethod string  `json:"payment_method" form:"payment_method"`
		ReceiptNumber string  `json:"receipt_number" form:"receipt_number"`
		Notes         string  `json:"notes" form:"notes"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.CurrencyType == "" {
		req.CurrencyType = models.CurrencyUSD
	}

	date, err := services.ParseDate(req.PaymentDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("payment_date must be YYYY-MM-DD"))
		return
	}

	revenue, booking, err := rc.Service.RecordRevenue(services.RecordRevenueInput{
		BookingID:     req.BookingID,
		PaymentDate:   date,
		Amount:        req.Amount,
		Currency:      req.CurrencyType,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: req.ReceiptNumber,
		Notes:         req.Notes,
		RecordedBy:    sessionUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownCurrency), errors.Is(err, services.ErrNonPositiveAmount):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("revenue recorded (ID=%d) booking=%d amount=%s %.2f -> %s",
		revenue.ID, booking.ID, revenue.CurrencyType, req.Amount, booking.PaymentStatus)
	events.BroadcastRevenueRecorded(*revenue, *booking)

	utils.RespondJSON(c, http.StatusCreated, "Revenue entry added successfully!", gin.H{
		"revenue": revenue,
		"booking": booking,
	})
}
