package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Ledger failures surfaced at the orchestration boundary.
var (
	ErrLedgerAccountNotFound   = errors.New("ledger account not found")
	ErrUnknownLedgerAccount    = errors.New("unknown ledger account code")
	ErrJournalNotFound         = errors.New("journal not found")
	ErrJournalNotPending       = errors.New("journal is not pending")
	ErrEntryNotFound           = errors.New("journal entry not found")
	ErrEntryNotRemovable       = errors.New("journal entry is not removable")
	ErrInsufficientFunds       = errors.New("insufficient lending capacity")
	ErrLoanLimitViolation      = errors.New("installment count outside loan type limits")
	ErrActiveLoanConflict      = errors.New("account already has an active loan")
	ErrAccountNotActive        = errors.New("account is not active")
	ErrInstallmentNotFound     = errors.New("installment not found")
	ErrSubscriptionFeeNotFound = errors.New("subscription fee not found")
)

// UnbalancedJournalError reports a debit/credit mismatch for an attempted posting.
// Totals are fixed-scale decimal strings so callers can surface them verbatim.
type UnbalancedJournalError struct {
	DebitTotal  string
	CreditTotal string
}

func (e *UnbalancedJournalError) Error() string {
	return fmt.Sprintf("journal entries do not balance: debits %s, credits %s", e.DebitTotal, e.CreditTotal)
}

// Is lets errors.Is treat any UnbalancedJournalError as a validation failure.
func (e *UnbalancedJournalError) Is(target error) bool {
	return target == ErrValidation
}
