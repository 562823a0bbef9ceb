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

type CashController struct {
	DB      *gorm.DB
	Service *services.LedgerService
}

func NewCashController(db *gorm.DB) *CashController {
	return &CashController{DB: db, Service: services.NewLedgerService(db)}
}

// GetAllCashTransactions -> newest first, paginated.
func (cc *CashController) GetAllCashTransactions(c *gin.Context) {
	page, perPage, offset := pagination(c)

	var total int64
	if err := cc.DB.Model(&models.CashManagement{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var entries []models.CashManagement
	if err := cc.DB.Order("transaction_date DESC").
		Limit(perPage).Offset(offset).
		Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of cash transactions", gin.H{
		"transactions": entries,
		"page":         page,
		"per_page":     perPage,
		"total":        total,
	})
}

// CreateCashTransaction -> vault/bank cash book entry.
func (cc *CashController) CreateCashTransaction(c *gin.Context) {
	var req struct {
		TransactionDate string  `json:"transaction_date" form:"transaction_date" binding:"required"`
		TransactionType string  `json:"transaction_type" form:"transaction_type" binding:"required"`
		Amount          float64 `json:"amount" form:"amount" binding:"required"`
		CurrencyType    string  `json:"currency_type" form:"currency_type"`
		Location        string  `json:"location" form:"location" binding:"required"`
		FromLocation    string  `json:"from_location" form:"from_location"`
		ToLocation      string  `json:"to_location" form:"to_location"`
		Description     string  `json:"description" form:"description"`
		ReferenceType   string  `json:"reference_type" form:"reference_type"`
		ReferenceID     uint    `json:"reference_id" form:"reference_id"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.CurrencyType == "" {
		req.CurrencyType = models.CurrencyUSD
	}

	date, err := services.ParseDate(req.TransactionDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("transaction_date must be YYYY-MM-DD"))
		return
	}

	entry, err := cc.Service.RecordCashTransaction(services.RecordCashInput{
		TransactionDate: date,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Currency:        req.CurrencyType,
		Location:        req.Location,
		FromLocation:    req.FromLocation,
		ToLocation:      req.ToLocation,
		Description:     req.Description,
		ReferenceType:   req.ReferenceType,
		ReferenceID:     req.ReferenceID,
		RecordedBy:      sessionUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTransaction),
			errors.Is(err, services.ErrInvalidCashLocation),
			errors.Is(err, services.ErrUnknownCurrency),
			errors.Is(err, services.ErrNonPositiveAmount):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("cash transaction recorded (ID=%d) %s %s %.2f at %s",
		entry.ID, entry.TransactionType, entry.CurrencyType, req.Amount, entry.Location)
	events.BroadcastCashRecorded(*entry)

	utils.RespondJSON(c, http.StatusCreated, "Cash transaction recorded", entry)
}
