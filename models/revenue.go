package models

import "time"

// Revenue is a single payment received against a booking. Rows are
// immutable once created; there are no update or delete routes.
type Revenue struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"not null" json:"booking_id"`
	Booking       Booking   `gorm:"foreignKey:BookingID" json:"booking"`
	PaymentDate   time.Time `gorm:"type:date;not null" json:"payment_date"`
	AmountUSD     float64   `gorm:"column:amount_usd;type:decimal(10,2);default:0" json:"amount_usd"`
	AmountLRD     float64   `gorm:"column:amount_lrd;type:decimal(15,2);default:0" json:"amount_lrd"`
	CurrencyType  string    `gorm:"type:varchar(3);not null" json:"currency_type"` // USD or LRD
	PaymentMethod string    `gorm:"type:varchar(50);default:'cash'" json:"payment_method"`
	PaymentStatus string    `gorm:"type:varchar(20);default:'complete'" json:"payment_status"`
	ReceiptNumber string    `gorm:"type:varchar(50)" json:"receipt_number"`
	Notes         string    `gorm:"type:text" json:"notes"`
	RecordedBy    uint      `json:"recorded_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Revenue) TableName() string { return "revenue" }
