package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking reserves one facility for one day. The composite unique
// index on (facility_id, booking_date) guarantees a slot can only be
// taken once, even under concurrent submissions.
type Booking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerID     uint      `gorm:"not null" json:"customer_id"`
	Customer       Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	FacilityID     uint      `gorm:"not null;uniqueIndex:uniq_facility_booking_date" json:"facility_id"`
	Facility       Facility  `gorm:"foreignKey:FacilityID" json:"facility"`
	EventID        uint      `gorm:"not null" json:"event_id"`
	Event          Event     `gorm:"foreignKey:EventID" json:"event"`
	BookingDate    time.Time `gorm:"type:date;not null;uniqueIndex:uniq_facility_booking_date" json:"booking_date"`
	TotalFeeUSD    float64   `gorm:"column:total_fee_usd;type:decimal(10,2);not null" json:"total_fee_usd"`
	AdvancePaidUSD float64   `gorm:"column:advance_paid_usd;type:decimal(10,2);default:0" json:"advance_paid_usd"`
	AdvancePaidLRD float64   `gorm:"column:advance_paid_lrd;type:decimal(15,2);default:0" json:"advance_paid_lrd"`
	PaymentStatus  string    `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	BookingStatus  string    `gorm:"type:varchar(20);default:'pending'" json:"booking_status"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedBy      uint      `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Derived, never stored: total_fee_usd - advance_paid_usd.
	BalanceDueUSD float64 `gorm:"-" json:"balance_due_usd"`
}

func (b *Booking) AfterFind(tx *gorm.DB) error {
	b.BalanceDueUSD = b.TotalFeeUSD - b.AdvancePaidUSD
	return nil
}

func (b *Booking) AfterSave(tx *gorm.DB) error {
	b.BalanceDueUSD = b.TotalFeeUSD - b.AdvancePaidUSD
	return nil
}
