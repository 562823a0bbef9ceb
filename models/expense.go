package models

import "time"

// ExpenseCategories is the fixed set of categories an expense may use.
var ExpenseCategories = []string{
	"Staff Fees", "Security", "DJ Fee", "Cleaning",
	"Repairs", "Lighting", "Sundry Expense",
}

func ValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expense is a categorized ledger entry. All references are optional;
// rows are immutable once created and never affect booking state.
type Expense struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     *uint     `json:"booking_id,omitempty"`
	Booking       *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	FacilityID    *uint     `json:"facility_id,omitempty"`
	Facility      *Facility `gorm:"foreignKey:FacilityID" json:"facility,omitempty"`
	EventID       *uint     `json:"event_id,omitempty"`
	Event         *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	CustomerID    *uint     `json:"customer_id,omitempty"`
	Customer      *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ExpenseDate   time.Time `gorm:"type:date;not null" json:"expense_date"`
	Category      string    `gorm:"type:varchar(100);not null" json:"category"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	AmountUSD     float64   `gorm:"column:amount_usd;type:decimal(10,2);default:0" json:"amount_usd"`
	AmountLRD     float64   `gorm:"column:amount_lrd;type:decimal(15,2);default:0" json:"amount_lrd"`
	CurrencyType  string    `gorm:"type:varchar(3);not null" json:"currency_type"`
	PaymentMethod string    `gorm:"type:varchar(50);default:'cash'" json:"payment_method"`
	ReceiptNumber string    `gorm:"type:varchar(50)" json:"receipt_number"`
	RecordedBy    uint      `json:"recorded_by"`
	CreatedAt     time.Time `json:"created_at"`
}
