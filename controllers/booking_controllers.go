package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/events"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/services"
	"github.com/tannehbartee/dujar-system/utils"
)

type BookingController struct {
	DB      *gorm.DB
	Service *services.BookingService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db, Service: services.NewBookingService(db)}
}

// GetAllBookings -> newest booking date first, paginated.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	page, perPage, offset := pagination(c)

	var total int64
	if err := bc.DB.Model(&models.Booking{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var bookings []models.Booking
	if err := bc.DB.Preload("Customer").Preload("Facility").Preload("Event").
		Order("booking_date DESC").
		Limit(perPage).Offset(offset).
		Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of bookings", gin.H{
		"bookings": bookings,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

// GetBookingForm -> candidate lists for the new-booking form. Only
// active facilities are offered; this filter is advisory and is not
// re-checked at creation time.
func (bc *BookingController) GetBookingForm(c *gin.Context) {
	var (
		customers  []models.Customer
		facilities []models.Facility
		eventTypes []models.Event
	)
	if err := bc.DB.Order("name").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := bc.DB.Where("status = ?", "active").Order("name").Find(&facilities).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := bc.DB.Order("name").Find(&eventTypes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "New booking form data", gin.H{
		"customers":  customers,
		"facilities": facilities,
		"events":     eventTypes,
	})
}

// CreateBooking -> books a facility for a single day; an advance
// payment immediately becomes a revenue entry.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		CustomerID    uint    `json:"customer_id" form:"customer_id" binding:"required"`
		FacilityID    uint    `json:"facility_id" form:"facility_id" binding:"required"`
		EventID       uint    `json:"event_id" form:"event_id" binding:"required"`
		BookingDate   string  `json:"booking_date" form:"booking_date" binding:"required"`
		AdvanceAmount float64 `json:"advance_amount" form:"advance_amount"`
		CurrencyType  string  `json:"currency_type" form:"currency_type"`
		Notes         string  `json:"notes" form:"notes"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.CurrencyType == "" {
		req.CurrencyType = models.CurrencyUSD
	}

	date, err := services.ParseDate(req.BookingDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("booking_date must be YYYY-MM-DD"))
		return
	}

	booking, err := bc.Service.CreateBooking(services.CreateBookingInput{
		CustomerID:    req.CustomerID,
		FacilityID:    req.FacilityID,
		EventID:       req.EventID,
		BookingDate:   date,
		AdvanceAmount: req.AdvanceAmount,
		Currency:      req.CurrencyType,
		Notes:         req.Notes,
		CreatedBy:     sessionUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDateUnavailable):
			utils.RespondError(c, http.StatusConflict, err)
		case errors.Is(err, services.ErrUnknownCurrency), errors.Is(err, services.ErrNonPositiveAmount):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("facility not found"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("booking created (ID=%d) facility=%d date=%s status=%s",
		booking.ID, booking.FacilityID, req.BookingDate, booking.PaymentStatus)
	events.BroadcastBookingCreated(*booking)

	utils.RespondJSON(c, http.StatusCreated, "Booking created successfully!", booking)
}

// GetBookingByID -> booking detail with its revenue history.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	var booking models.Booking
	if err := bc.DB.Preload("Customer").Preload("Facility").Preload("Event").
		First(&booking, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var revenueEntries []models.Revenue
	if err := bc.DB.Where("booking_id = ?", booking.ID).
		Order("payment_date").Find(&revenueEntries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking detail", gin.H{
		"booking":         booking,
		"revenue_entries": revenueEntries,
	})
}

// CheckAvailability -> interactive availability probe. The response
// shape is {available, message}, not the JSON envelope, because the
// booking form consumes it directly.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	facilityParam := c.Query("facility_id")
	dateParam := c.Query("date")
	if facilityParam == "" || dateParam == "" {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": "Missing parameters"})
		return
	}

	facilityID, err := strconv.ParseUint(facilityParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": "Invalid facility id"})
		return
	}
	date, err := services.ParseDate(dateParam)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	available, existing, err := services.IsDateAvailable(bc.DB, uint(facilityID), date)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": err.Error()})
		return
	}
	if !available {
		c.JSON(http.StatusOK, gin.H{
			"available": false,
			"message":   "Facility already booked by " + existing.Customer.Name,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "message": "Date available"})
}
