package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(50);unique;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"` // admin, staff, manager
	FullName     string `gorm:"type:varchar(200);not null" json:"full_name"`
	Email        string `gorm:"type:varchar(100)" json:"email"`
	// No column default; a default tag would make gorm drop an
	// explicit false on insert. Callers set the flag on creation.
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
