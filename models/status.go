package models

// Payment status of a booking, driven by cumulative revenue.
const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentComplete = "complete"
)

// Booking lifecycle status.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Currencies handled by the ledger.
const (
	CurrencyUSD = "USD"
	CurrencyLRD = "LRD"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleManager = "manager"
)
