package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus tracks a loan from disbursement to payoff.
type LoanStatus string

const (
	LoanPending LoanStatus = "PENDING"
	LoanActive  LoanStatus = "ACTIVE"
	LoanClosed  LoanStatus = "CLOSED"
)

// LoanType bounds the installment count and fixes the commission rate.
type LoanType struct {
	LoanTypeID           string          `json:"loanTypeID"` // Primary Key (UUID)
	Name                 string          `json:"name"`
	MinMonths            int             `json:"minMonths"`
	MaxMonths            int             `json:"maxMonths"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	AuditFields
}

// Loan is a disbursed principal tied to one customer account.
type Loan struct {
	LoanID           string          `json:"loanID"`     // Primary Key (UUID)
	AccountID        string          `json:"accountID"`  // FK -> Account
	LoanTypeID       string          `json:"loanTypeID"` // FK -> LoanType
	Amount           decimal.Decimal `json:"amount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	PaymentMonths    int             `json:"paymentMonths"`
	StartDate        time.Time       `json:"startDate"`
	Status           LoanStatus      `json:"status"`
	AuditFields
}
