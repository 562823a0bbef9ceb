package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	// One named in-memory database per test; a fixed name would leak
	// rows between tests through the shared cache.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
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
	db.Create(&models.Customer{Name: "Test Customer"})
	db.Create(&models.Facility{Name: "Classroom", Type: "Educational", Capacity: 30, USDFee: 150.00})
	db.Create(&models.Event{Name: "Schooling", AllowedFacilities: models.FacilityIDList{4, 5}})
	return db
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, models.PaymentPending, PaymentStatusFor(0, 300))
	assert.Equal(t, models.PaymentPartial, PaymentStatusFor(150, 300))
	assert.Equal(t, models.PaymentComplete, PaymentStatusFor(300, 300))
	assert.Equal(t, models.PaymentComplete, PaymentStatusFor(350, 300))
	// A zero-fee booking stays pending until money actually arrives.
	assert.Equal(t, models.PaymentPending, PaymentStatusFor(0, 0))
	assert.Equal(t, models.PaymentComplete, PaymentStatusFor(10, 0))
}

func TestToUSD(t *testing.T) {
	assert.Equal(t, 100.0, ToUSD(100, models.CurrencyUSD, 190))
	assert.Equal(t, 100.0, ToUSD(19000, models.CurrencyLRD, 190))
	assert.Equal(t, 0.53, ToUSD(100, models.CurrencyLRD, 190))
	// A broken rate falls back to the default instead of dividing by zero.
	assert.Equal(t, 100.0, ToUSD(19000, models.CurrencyLRD, 0))
}

func TestExchangeRateFallsBack(t *testing.T) {
	db := newServiceTestDB(t)

	// No setting row yet.
	assert.Equal(t, DefaultExchangeRate, ExchangeRate(db))

	db.Create(&models.SystemSetting{SettingKey: models.SettingUSDToLRDRate, SettingValue: "197.50"})
	assert.Equal(t, 197.5, ExchangeRate(db))

	db.Model(&models.SystemSetting{}).
		Where("setting_key = ?", models.SettingUSDToLRDRate).
		Update("setting_value", "not-a-number")
	assert.Equal(t, DefaultExchangeRate, ExchangeRate(db))
}

func TestIsDateAvailable(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewBookingService(db)

	date, err := ParseDate("2026-11-05")
	assert.NoError(t, err)

	available, existing, err := IsDateAvailable(db, 1, date)
	assert.NoError(t, err)
	assert.True(t, available)
	assert.Nil(t, existing)

	_, err = svc.CreateBooking(CreateBookingInput{
		CustomerID:  1,
		FacilityID:  1,
		EventID:     1,
		BookingDate: date,
		Currency:    models.CurrencyUSD,
		CreatedBy:   1,
	})
	assert.NoError(t, err)

	available, existing, err = IsDateAvailable(db, 1, date)
	assert.NoError(t, err)
	assert.False(t, available)
	assert.NotNil(t, existing)
	assert.Equal(t, "Test Customer", existing.Customer.Name)

	// A different facility on the same day is unaffected.
	db.Create(&models.Facility{Name: "Office", Type: "Workspace", Capacity: 10, USDFee: 200.00})
	available, _, err = IsDateAvailable(db, 2, date)
	assert.NoError(t, err)
	assert.True(t, available)
}

func TestCreateBookingRejectsSecondSlot(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewBookingService(db)

	date, _ := ParseDate("2026-11-10")
	input := CreateBookingInput{
		CustomerID:  1,
		FacilityID:  1,
		EventID:     1,
		BookingDate: date,
		Currency:    models.CurrencyUSD,
		CreatedBy:   1,
	}

	_, err := svc.CreateBooking(input)
	assert.NoError(t, err)

	_, err = svc.CreateBooking(input)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingRejectsUnknownCurrency(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewBookingService(db)

	date, _ := ParseDate("2026-11-12")
	_, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:  1,
		FacilityID:  1,
		EventID:     1,
		BookingDate: date,
		Currency:    "EUR",
	})
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}
