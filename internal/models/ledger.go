package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerAccount is the database row for a chart-of-accounts entry.
type LedgerAccount struct {
	LedgerAccountID string
	Code            string
	Name            string
	AccountType     string
	Status          string
	AuditFields
}

// Journal is the database row for a journal header.
type Journal struct {
	JournalID     string
	TransactionID *string
	PostedAt      time.Time
	Status        string
	Note          string
	AuditFields
}

// JournalEntry is the database row for one debit or credit leg. The target
// pair is nullable; both columns are set together or not at all.
type JournalEntry struct {
	EntryID         string
	JournalID       string
	LineNo          int
	LedgerAccountID string
	Direction       string
	Amount          decimal.Decimal
	TargetKind      *string
	TargetID        *string
	Removable       bool
	AuditFields
}

// AuditFields holds the audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
