package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard -> aggregate counts, the five most recent bookings and
// current-month revenue in both currencies.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	var stats struct {
		TotalBookings     int64   `json:"total_bookings"`
		PendingBookings   int64   `json:"pending_bookings"`
		TotalCustomers    int64   `json:"total_customers"`
		TotalFacilities   int64   `json:"total_facilities"`
		MonthlyRevenueUSD float64 `json:"monthly_revenue_usd"`
		MonthlyRevenueLRD float64 `json:"monthly_revenue_lrd"`
	}

	if err := dc.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	dc.DB.Model(&models.Booking{}).Where("payment_status = ?", models.PaymentPending).Count(&stats.PendingBookings)
	dc.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers)
	dc.DB.Model(&models.Facility{}).Count(&stats.TotalFacilities)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	dc.DB.Model(&models.Revenue{}).
		Where("payment_date >= ? AND payment_date < ?", monthStart, nextMonth).
		Select("COALESCE(SUM(amount_usd), 0)").Row().Scan(&stats.MonthlyRevenueUSD)
	dc.DB.Model(&models.Revenue{}).
		Where("payment_date >= ? AND payment_date < ?", monthStart, nextMonth).
		Select("COALESCE(SUM(amount_lrd), 0)").Row().Scan(&stats.MonthlyRevenueLRD)

	var recentBookings []models.Booking
	if err := dc.DB.Preload("Customer").Preload("Facility").Preload("Event").
		Order("created_at DESC").Limit(5).
		Find(&recentBookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", gin.H{
		"stats":           stats,
		"recent_bookings": recentBookings,
	})
}
