package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
)

var (
	ErrInvalidCategory     = errors.New("unknown expense category")
	ErrDescriptionMissing  = errors.New("description is required")
	ErrInvalidTransaction  = errors.New("transaction type must be deposit, withdrawal or transfer")
	ErrInvalidCashLocation = errors.New("location must be vault or bank")
)

// LedgerService records expense and cash-management entries. Both are
// append-only; neither touches booking state.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

type RecordExpenseInput struct {
	BookingID     *uint
	FacilityID    *uint
	EventID       *uint
	CustomerID    *uint
	ExpenseDate   time.Time
	Category      string
	Description   string
	Amount        float64
	Currency      string
	PaymentMethod string
	ReceiptNumber string
	RecordedBy    uint
}

func (s *LedgerService) RecordExpense(in RecordExpenseInput) (*models.Expense, error) {
	if !models.ValidExpenseCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if in.Description == "" {
		return nil, ErrDescriptionMissing
	}
	if in.Currency != models.CurrencyUSD && in.Currency != models.CurrencyLRD {
		return nil, ErrUnknownCurrency
	}
	if in.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "cash"
	}

	expense := models.Expense{
		BookingID:     in.BookingID,
		FacilityID:    in.FacilityID,
		EventID:       in.EventID,
		CustomerID:    in.CustomerID,
		ExpenseDate:   in.ExpenseDate,
		Category:      in.Category,
		Description:   in.Description,
		CurrencyType:  in.Currency,
		PaymentMethod: in.PaymentMethod,
		ReceiptNumber: in.ReceiptNumber,
		RecordedBy:    in.RecordedBy,
	}
	if in.Currency == models.CurrencyUSD {
		expense.AmountUSD = in.Amount
	} else {
		expense.AmountLRD = in.Amount
	}

	if err := s.DB.Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

type RecordCashInput struct {
	TransactionDate time.Time
	TransactionType string
	Amount          float64
	Currency        string
	Location        string
	FromLocation    string
	ToLocation      string
	Description     string
	ReferenceType   string
	ReferenceID     uint
	RecordedBy      uint
}

func (s *LedgerService) RecordCashTransaction(in RecordCashInput) (*models.CashManagement, error) {
	switch in.TransactionType {
	case "deposit", "withdrawal", "transfer":
	default:
		return nil, ErrInvalidTransaction
	}
	switch in.Location {
	case "vault", "bank":
	default:
		return nil, ErrInvalidCashLocation
	}
	if in.Currency != models.CurrencyUSD && in.Currency != models.CurrencyLRD {
		return nil, ErrUnknownCurrency
	}
	if in.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	entry := models.CashManagement{
		TransactionDate: in.TransactionDate,
		TransactionType: in.TransactionType,
		CurrencyType:    in.Currency,
		Location:        in.Location,
		FromLocation:    in.FromLocation,
		ToLocation:      in.ToLocation,
		Description:     in.Description,
		ReferenceType:   in.ReferenceType,
		ReferenceID:     in.ReferenceID,
		RecordedBy:      in.RecordedBy,
	}
	if in.Currency == models.CurrencyUSD {
		entry.AmountUSD = in.Amount
	} else {
		entry.AmountLRD = in.Amount
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
