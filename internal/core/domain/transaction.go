package domain

import "github.com/shopspring/decimal"

// TransactionKind distinguishes the direction of a business money movement.
type TransactionKind string

const (
	CashIn  TransactionKind = "CASH_IN"
	CashOut TransactionKind = "CASH_OUT"
)

// TransactionStatus tracks allocation of a transaction's journal.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionAllocated TransactionStatus = "ALLOCATED"
)

// Transaction is one user-facing money movement. It becomes ALLOCATED once
// the suspense-account subset of its journal nets to zero.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	AccountID     string            `json:"accountID"`     // FK -> Account (payer)
	Kind          TransactionKind   `json:"kind"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	ExternalRef   *string           `json:"externalRef"` // Nullable, unique when present
	Note          string            `json:"note"`
	AuditFields
}
