package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/controllers"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/services"
	"github.com/tannehbartee/dujar-system/utils"
)

func setupTestDBForRevenue(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(testDSN(t)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{}, &models.Facility{}, &models.Event{},
		&models.Booking{}, &models.Revenue{}, &models.SystemSetting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.Customer{Name: "Hawa Dukuly"})
	db.Create(&models.Facility{Name: "Conference Room", Type: "Meeting Room", Capacity: 50, USDFee: 300.00})
	db.Create(&models.Event{Name: "Rally", AllowedFacilities: models.FacilityIDList{1, 2}})
	db.Create(&models.SystemSetting{SettingKey: models.SettingUSDToLRDRate, SettingValue: "190.00"})
	return db
}

func setupRevenueRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeSession())
	revenueCtrl := controllers.NewRevenueController(db)
	router.POST("/revenue", revenueCtrl.CreateRevenue)
	router.GET("/revenue", revenueCtrl.GetAllRevenue)
	return router
}

func mustCreateBooking(t *testing.T, db *gorm.DB, date string, advance float64) *models.Booking {
	svc := services.NewBookingService(db)
	bookingDate, err := services.ParseDate(date)
	assert.NoError(t, err)
	booking, err := svc.CreateBooking(services.CreateBookingInput{
		CustomerID:    1,
		FacilityID:    1,
		EventID:       1,
		BookingDate:   bookingDate,
		AdvanceAmount: advance,
		Currency:      models.CurrencyUSD,
		CreatedBy:     1,
	})
	assert.NoError(t, err)
	return booking
}

func TestRecordRevenueCompletesBooking(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRevenue(t)
	router := setupRevenueRouter(db)

	// Conference Room at 300 with a 150 advance: one more 150 payment
	// settles it.
	booking := mustCreateBooking(t, db, "2026-10-01", 150)
	assert.Equal(t, models.PaymentPartial, booking.PaymentStatus)

	w := postJSON(t, router, "/revenue", map[string]interface{}{
		"booking_id":    booking.ID,
		"payment_date":  "2026-10-02",
		"amount":        150.0,
		"currency_type": "USD",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Revenue entry added successfully!", resp["message"])

	data := resp["data"].(map[string]interface{})
	updated := data["booking"].(map[string]interface{})
	assert.Equal(t, models.PaymentComplete, updated["payment_status"])
	assert.Equal(t, 300.0, updated["advance_paid_usd"])
	assert.Equal(t, 0.0, updated["balance_due_usd"])
	assert.Equal(t, models.BookingConfirmed, updated["booking_status"])
}

func TestRecordRevenuePartialPayment(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRevenue(t)
	router := setupRevenueRouter(db)

	booking := mustCreateBooking(t, db, "2026-10-05", 0)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)

	w := postJSON(t, router, "/revenue", map[string]interface{}{
		"booking_id":   booking.ID,
		"payment_date": "2026-10-06",
		"amount":       100.0,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	updated := resp["data"].(map[string]interface{})["booking"].(map[string]interface{})
	assert.Equal(t, models.PaymentPartial, updated["payment_status"])
	assert.Equal(t, 100.0, updated["advance_paid_usd"])
	assert.Equal(t, 200.0, updated["balance_due_usd"])
}

func TestRecordRevenueLRDConversion(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRevenue(t)
	router := setupRevenueRouter(db)

	booking := mustCreateBooking(t, db, "2026-10-10", 0)

	// 19,000 LRD at 190 = 100 USD equivalent.
	w := postJSON(t, router, "/revenue", map[string]interface{}{
		"booking_id":    booking.ID,
		"payment_date":  "2026-10-11",
		"amount":        19000.0,
		"currency_type": "LRD",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	revenue := data["revenue"].(map[string]interface{})
	assert.Equal(t, 19000.0, revenue["amount_lrd"])
	assert.Equal(t, 0.0, revenue["amount_usd"])

	updated := data["booking"].(map[string]interface{})
	assert.Equal(t, models.PaymentPartial, updated["payment_status"])
	assert.Equal(t, 100.0, updated["advance_paid_usd"])
	assert.Equal(t, 19000.0, updated["advance_paid_lrd"])
}

func TestRecordRevenueRejectsBadInput(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRevenue(t)
	router := setupRevenueRouter(db)

	booking := mustCreateBooking(t, db, "2026-10-15", 0)

	// Unknown currency.
	w := postJSON(t, router, "/revenue", map[string]interface{}{
		"booking_id":    booking.ID,
		"payment_date":  "2026-10-16",
		"amount":        50.0,
		"currency_type": "EUR",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown booking.
	w = postJSON(t, router, "/revenue", map[string]interface{}{
		"booking_id":   9999,
		"payment_date": "2026-10-16",
		"amount":       50.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The booking is untouched after the failures.
	var fresh models.Booking
	assert.NoError(t, db.First(&fresh, booking.ID).Error)
	assert.Equal(t, models.PaymentPending, fresh.PaymentStatus)
	assert.Equal(t, 0.0, fresh.AdvancePaidUSD)
}
