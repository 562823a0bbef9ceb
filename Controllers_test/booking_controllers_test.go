package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/controllers"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

// testDSN names the in-memory database after the running test so no
// rows leak between tests through the shared cache.
func testDSN(t *testing.T) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
}

func setupTestDBForBookings(t *testing.T) *gorm.DB {
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

	db.Create(&models.Customer{Name: "Moses Kargbo", Phone: "0770000001"})
	db.Create(&models.Facility{Name: "Conference Room", Type: "Meeting Room", Capacity: 50, USDFee: 300.00})
	db.Create(&models.Event{Name: "Party", Description: "Private party", AllowedFacilities: models.FacilityIDList{1, 2}})
	db.Create(&models.SystemSetting{SettingKey: models.SettingUSDToLRDRate, SettingValue: "190.00"})
	return db
}

// fakeSession stands in for the auth middleware in handler tests.
func fakeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("username", "admin")
		c.Set("role", "admin")
		c.Next()
	}
}

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeSession())
	bookingCtrl := controllers.NewBookingController(db)
	router.POST("/bookings", bookingCtrl.CreateBooking)
	router.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	router.GET("/check-availability", bookingCtrl.CheckAvailability)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingWithAdvance(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	w := postJSON(t, router, "/bookings", map[string]interface{}{
		"customer_id":    1,
		"facility_id":    1,
		"event_id":       1,
		"booking_date":   "2026-09-10",
		"advance_amount": 150.0,
		"currency_type":  "USD",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking created successfully!", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.PaymentPartial, data["payment_status"])
	assert.Equal(t, models.BookingConfirmed, data["booking_status"])
	assert.Equal(t, 300.0, data["total_fee_usd"])
	assert.Equal(t, 150.0, data["advance_paid_usd"])
	assert.Equal(t, 150.0, data["balance_due_usd"])

	// The advance becomes a revenue entry.
	var revenueCount int64
	db.Model(&models.Revenue{}).Where("booking_id = ?", uint(data["id"].(float64))).Count(&revenueCount)
	assert.Equal(t, int64(1), revenueCount)

	var revenue models.Revenue
	db.Where("booking_id = ?", uint(data["id"].(float64))).First(&revenue)
	assert.Equal(t, 150.0, revenue.AmountUSD)
	assert.Equal(t, models.CurrencyUSD, revenue.CurrencyType)
}

func TestCreateBookingWithoutAdvance(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	w := postJSON(t, router, "/bookings", map[string]interface{}{
		"customer_id":  1,
		"facility_id":  1,
		"event_id":     1,
		"booking_date": "2026-09-11",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.PaymentPending, data["payment_status"])
	assert.Equal(t, models.BookingPending, data["booking_status"])
	assert.Equal(t, 300.0, data["balance_due_usd"])

	var revenueCount int64
	db.Model(&models.Revenue{}).Where("booking_id = ?", uint(data["id"].(float64))).Count(&revenueCount)
	assert.Equal(t, int64(0), revenueCount)
}

func TestDoubleBookingRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	payload := map[string]interface{}{
		"customer_id":  1,
		"facility_id":  1,
		"event_id":     1,
		"booking_date": "2026-09-12",
	}
	first := postJSON(t, router, "/bookings", payload)
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/bookings", payload)
	assert.Equal(t, http.StatusConflict, second.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["status"])

	// Only the first booking exists for that slot.
	var total int64
	db.Model(&models.Booking{}).Count(&total)
	assert.Equal(t, int64(1), total)
}

func TestCheckAvailability(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	// Free date.
	req, _ := http.NewRequest("GET", "/check-availability?facility_id=1&date=2026-09-15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["available"])
	assert.Equal(t, "Date available", resp["message"])

	// Take the slot, then probe again.
	created := postJSON(t, router, "/bookings", map[string]interface{}{
		"customer_id":  1,
		"facility_id":  1,
		"event_id":     1,
		"booking_date": "2026-09-15",
	})
	assert.Equal(t, http.StatusCreated, created.Code)

	req, _ = http.NewRequest("GET", "/check-availability?facility_id=1&date=2026-09-15", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["available"])
	assert.Equal(t, "Facility already booked by Moses Kargbo", resp["message"])

	// Missing parameters.
	req, _ = http.NewRequest("GET", "/check-availability", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["available"])
	assert.Equal(t, "Missing parameters", resp["message"])
}
