package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row for a business money movement.
type Transaction struct {
	TransactionID string
	AccountID     string
	Kind          string
	Amount        decimal.Decimal
	Status        string
	ExternalRef   *string
	Note          string
	AuditFields
}

// Account is the database row for a customer account.
type Account struct {
	AccountID string
	Number    string
	OwnerName string
	Status    string
	AuditFields
}

// LoanType is the database row for a loan product.
type LoanType struct {
	LoanTypeID           string
	Name                 string
	MinMonths            int
	MaxMonths            int
	CommissionPercentage decimal.Decimal
	AuditFields
}

// Loan is the database row for a disbursed loan.
type Loan struct {
	LoanID           string
	AccountID        string
	LoanTypeID       string
	Amount           decimal.Decimal
	CommissionAmount decimal.Decimal
	PaymentMonths    int
	StartDate        time.Time
	Status           string
	AuditFields
}

// Installment is the database row for one scheduled repayment.
type Installment struct {
	InstallmentID  string
	LoanID         string
	Sequence       int
	Amount         decimal.Decimal
	DueDate        time.Time
	Status         string
	JournalEntryID *string
	AuditFields
}

// SubscriptionFee is the database row for a periodic account fee.
type SubscriptionFee struct {
	SubscriptionFeeID string
	AccountID         string
	Period            string
	Amount            decimal.Decimal
	Status            string
	JournalEntryID    *string
	AuditFields
}
