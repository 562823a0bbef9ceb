package models

import "time"

// Keys seeded on first run and read back by the consumers that need
// them; values are plain strings parsed at the point of use.
const (
	SettingUSDToLRDRate      = "usd_to_lrd_rate"
	SettingCompanyName       = "company_name"
	SettingCompanyAddress    = "company_address"
	SettingAdvancePercentage = "advance_payment_percentage"
)

type SystemSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"type:varchar(100);unique;not null" json:"setting_key"`
	SettingValue string    `gorm:"type:text;not null" json:"setting_value"`
	Description  string    `gorm:"type:text" json:"description"`
	UpdatedBy    uint      `json:"updated_by"`
	UpdatedAt    time.Time `json:"updated_at"`
}
