package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus tracks one scheduled repayment leg of a loan.
type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "PENDING"
	InstallmentActive    InstallmentStatus = "ACTIVE"
	InstallmentAllocated InstallmentStatus = "ALLOCATED"
)

// Installment is one scheduled repayment of a loan. JournalEntryID is
// stamped when a repayment allocation settles it.
type Installment struct {
	InstallmentID  string            `json:"installmentID"` // Primary Key (UUID)
	LoanID         string            `json:"loanID"`        // FK -> Loan
	Sequence       int               `json:"sequence"`      // 1-based position in the schedule
	Amount         decimal.Decimal   `json:"amount"`
	DueDate        time.Time         `json:"dueDate"`
	Status         InstallmentStatus `json:"status"`
	JournalEntryID *string           `json:"journalEntryID"` // Nullable FK -> JournalEntry
	AuditFields
}
