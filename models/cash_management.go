package models

import "time"

// CashManagement records vault/bank cash movements. Nothing else in
// the system consumes these rows; they exist for the cash book only.
type CashManagement struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TransactionDate time.Time `gorm:"type:date;not null" json:"transaction_date"`
	TransactionType string    `gorm:"type:varchar(50);not null" json:"transaction_type"` // deposit, withdrawal, transfer
	AmountUSD       float64   `gorm:"column:amount_usd;type:decimal(10,2);default:0" json:"amount_usd"`
	AmountLRD       float64   `gorm:"column:amount_lrd;type:decimal(15,2);default:0" json:"amount_lrd"`
	CurrencyType    string    `gorm:"type:varchar(3);not null" json:"currency_type"`
	Location        string    `gorm:"type:varchar(20);not null" json:"location"` // vault, bank
	FromLocation    string    `gorm:"type:varchar(20)" json:"from_location"`
	ToLocation      string    `gorm:"type:varchar(20)" json:"to_location"`
	Description     string    `gorm:"type:text" json:"description"`
	ReferenceType   string    `gorm:"type:varchar(20)" json:"reference_type"` // revenue, expense, transfer
	ReferenceID     uint      `json:"reference_id"`
	RecordedBy      uint      `json:"recorded_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func (CashManagement) TableName() string { return "cash_management" }
