package domain

import "github.com/shopspring/decimal"

// EntryDirection indicates whether an entry is a Debit or a Credit leg.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// TargetKind discriminates the business object a journal entry points at.
type TargetKind string

const (
	TargetLoan            TargetKind = "LOAN"
	TargetInstallment     TargetKind = "INSTALLMENT"
	TargetSubscriptionFee TargetKind = "SUBSCRIPTION_FEE"
	TargetAccount         TargetKind = "ACCOUNT"
	TargetFee             TargetKind = "FEE"
	TargetCommission      TargetKind = "COMMISSION"
	TargetAdjustment      TargetKind = "ADJUSTMENT"
	TargetRefund          TargetKind = "REFUND"
	TargetReversal        TargetKind = "REVERSAL"
)

// EntryTarget links an entry to the business object it settles.
type EntryTarget struct {
	Kind TargetKind `json:"kind"`
	ID   string     `json:"id"`
}

// AllocationType selects the credit-leg account for an incremental allocation.
type AllocationType string

const (
	AllocateAccountBalance  AllocationType = "ACCOUNT_BALANCE"
	AllocateLoanRepayment   AllocationType = "LOAN_REPAYMENT"
	AllocateSubscriptionFee AllocationType = "SUBSCRIPTION_FEE"
)

// JournalEntry is one debit or credit leg within a journal, against exactly
// one ledger account. Entries cannot exist without their parent journal.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`   // Primary Key (UUID)
	JournalID       string          `json:"journalID"` // FK -> Journal (Not Null)
	LineNo          int             `json:"lineNo"`    // Position within the journal, 1-based
	LedgerAccountID string          `json:"ledgerAccountID"`
	Direction       EntryDirection  `json:"direction"`
	Amount          decimal.Decimal `json:"amount"` // Positive, scale 4
	Target          *EntryTarget    `json:"target,omitempty"`
	Removable       bool            `json:"removable"` // Protected legs never leave storage
	AuditFields
}
