package models

import "time"

type Facility struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	Type               string    `gorm:"type:varchar(50);not null" json:"type"`
	Capacity           int       `json:"capacity"`
	USDFee             float64   `gorm:"column:usd_fee;type:decimal(10,2);not null" json:"usd_fee"`
	Status             string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	AvailabilityStatus string    `gorm:"type:varchar(20);default:'available'" json:"availability_status"`
	Description        string    `gorm:"type:text" json:"description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
