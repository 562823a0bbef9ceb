package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
)

// DefaultExchangeRate is used when the usd_to_lrd_rate setting is
// missing or unparseable.
const DefaultExchangeRate = 190.0

var (
	ErrDateUnavailable   = errors.New("this facility is already booked for the selected date")
	ErrUnknownCurrency   = errors.New("currency must be USD or LRD")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// BookingService owns the booking/payment domain logic: availability,
// payment-status classification, and the transactional write paths.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ExchangeRate reads the configured USD to LRD rate.
func ExchangeRate(db *gorm.DB) float64 {
	var setting models.SystemSetting
	if err := db.Where("setting_key = ?", models.SettingUSDToLRDRate).First(&setting).Error; err != nil {
		return DefaultExchangeRate
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(setting.SettingValue), 64)
	if err != nil || rate <= 0 {
		return DefaultExchangeRate
	}
	return rate
}

// ToUSD converts an amount in the given currency to its USD
// equivalent at the given rate, rounded to cents.
func ToUSD(amount float64, currency string, rate float64) float64 {
	if currency == models.CurrencyUSD {
		return amount
	}
	if rate <= 0 {
		rate = DefaultExchangeRate
	}
	return math.Round(amount/rate*100) / 100
}

// PaymentStatusFor classifies cumulative USD-equivalent payments
// against a booking's total fee: complete once the fee is covered,
// partial while something but not everything has been paid.
func PaymentStatusFor(paidUSD, totalUSD float64) string {
	switch {
	case paidUSD > 0 && paidUSD >= totalUSD:
		return models.PaymentComplete
	case paidUSD > 0:
		return models.PaymentPartial
	default:
		return models.PaymentPending
	}
}

// IsDateAvailable reports whether the facility is free on the given
// date. It is the single availability predicate, shared by the
// interactive endpoint and the booking-creation transaction. Bookings
// are single-day, so the check is exact-match on the date.
func IsDateAvailable(db *gorm.DB, facilityID uint, date time.Time) (bool, *models.Booking, error) {
	var existing models.Booking
	err := db.Preload("Customer").
		Where("facility_id = ? AND booking_date = ?", facilityID, date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return false, &existing, nil
}

type CreateBookingInput struct {
	CustomerID    uint
	FacilityID    uint
	EventID       uint
	BookingDate   time.Time
	AdvanceAmount float64
	Currency      string
	Notes         string
	CreatedBy     uint
}

// CreateBooking books a facility for a single day. The availability
// check runs inside the same transaction as the insert, and the
// unique index on (facility_id, booking_date) backs it up, so two
// concurrent submissions cannot both win the slot.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.Currency != models.CurrencyUSD && in.Currency != models.CurrencyLRD {
		return nil, ErrUnknownCurrency
	}
	if in.AdvanceAmount < 0 {
		return nil, ErrNonPositiveAmount
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		available, _, err := IsDateAvailable(tx, in.FacilityID, in.BookingDate)
		if err != nil {
			return err
		}
		if !available {
			return ErrDateUnavailable
		}

		var facility models.Facility
		if err := tx.First(&facility, in.FacilityID).Error; err != nil {
			return err
		}

		rate := ExchangeRate(tx)
		advanceUSD := ToUSD(in.AdvanceAmount, in.Currency, rate)

		booking = models.Booking{
			CustomerID:     in.CustomerID,
			FacilityID:     in.FacilityID,
			EventID:        in.EventID,
			BookingDate:    in.BookingDate,
			TotalFeeUSD:    facility.USDFee,
			AdvancePaidUSD: advanceUSD,
			PaymentStatus:  PaymentStatusFor(advanceUSD, facility.USDFee),
			BookingStatus:  models.BookingPending,
			Notes:          in.Notes,
			CreatedBy:      in.CreatedBy,
		}
		if in.Currency == models.CurrencyLRD {
			booking.AdvancePaidLRD = in.AdvanceAmount
		}
		if in.AdvanceAmount > 0 {
			booking.BookingStatus = models.BookingConfirmed
		}

		if err := tx.Create(&booking).Error; err != nil {
			if isDuplicateSlot(err) {
				return ErrDateUnavailable
			}
			return err
		}

		// An advance payment is itself revenue, booked today.
		if in.AdvanceAmount > 0 {
			revenue := models.Revenue{
				BookingID:    booking.ID,
				PaymentDate:  Today(),
				CurrencyType: in.Currency,
				RecordedBy:   in.CreatedBy,
			}
			if in.Currency == models.CurrencyUSD {
				revenue.AmountUSD = in.AdvanceAmount
			} else {
				revenue.AmountLRD = in.AdvanceAmount
			}
			if err := tx.Create(&revenue).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

type RecordRevenueInput struct {
	BookingID     uint
	PaymentDate   time.Time
	Amount        float64
	Currency      string
	PaymentMethod string
	ReceiptNumber string
	Notes         string
	RecordedBy    uint
}

// RecordRevenue inserts a payment and reconciles the booking against
// the full revenue history: advance_paid_usd becomes the cumulative
// USD equivalent (LRD entries converted at the configured rate) and
// the payment status is recomputed. All writes commit or roll back
// together.
func (s *BookingService) RecordRevenue(in RecordRevenueInput) (*models.Revenue, *models.Booking, error) {
	if in.Currency != models.CurrencyUSD && in.Currency != models.CurrencyLRD {
		return nil, nil, ErrUnknownCurrency
	}
	if in.Amount <= 0 {
		return nil, nil, ErrNonPositiveAmount
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "cash"
	}

	var (
		revenue models.Revenue
		booking models.Booking
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, in.BookingID).Error; err != nil {
			return err
		}

		revenue = models.Revenue{
			BookingID:     booking.ID,
			PaymentDate:   in.PaymentDate,
			CurrencyType:  in.Currency,
			PaymentMethod: in.PaymentMethod,
			ReceiptNumber: in.ReceiptNumber,
			Notes:         in.Notes,
			RecordedBy:    in.RecordedBy,
		}
		if in.Currency == models.CurrencyUSD {
			revenue.AmountUSD = in.Amount
		} else {
			revenue.AmountLRD = in.Amount
		}
		if err := tx.Create(&revenue).Error; err != nil {
			return err
		}

		var sums struct {
			TotalUSD float64
			TotalLRD float64
		}
		if err := tx.Model(&models.Revenue{}).
			Select("COALESCE(SUM(amount_usd), 0) AS total_usd, COALESCE(SUM(amount_lrd), 0) AS total_lrd").
			Where("booking_id = ?", booking.ID).
			Scan(&sums).Error; err != nil {
			return err
		}

		rate := ExchangeRate(tx)
		paidUSD := sums.TotalUSD + ToUSD(sums.TotalLRD, models.CurrencyLRD, rate)

		booking.AdvancePaidUSD = paidUSD
		booking.AdvancePaidLRD = sums.TotalLRD
		booking.PaymentStatus = PaymentStatusFor(paidUSD, booking.TotalFeeUSD)
		if paidUSD > 0 && booking.BookingStatus == models.BookingPending {
			booking.BookingStatus = models.BookingConfirmed
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &revenue, &booking, nil
}

// Today returns the current date truncated to midnight UTC, matching
// how booking and payment dates are parsed from form input.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// ParseDate parses a YYYY-MM-DD form value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func isDuplicateSlot(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") // mysql
}
