package domain

import "github.com/shopspring/decimal"

// SubscriptionFeeStatus tracks collection of a periodic account fee.
type SubscriptionFeeStatus string

const (
	SubscriptionFeePending   SubscriptionFeeStatus = "PENDING"
	SubscriptionFeeAllocated SubscriptionFeeStatus = "ALLOCATED"
)

// SubscriptionFee is a periodic charge on a customer account, settled by a
// SUBSCRIPTION_FEE allocation the same way installments are.
type SubscriptionFee struct {
	SubscriptionFeeID string                `json:"subscriptionFeeID"` // Primary Key (UUID)
	AccountID         string                `json:"accountID"`         // FK -> Account
	Period            string                `json:"period"`            // e.g. "2026-09"
	Amount            decimal.Decimal       `json:"amount"`
	Status            SubscriptionFeeStatus `json:"status"`
	JournalEntryID    *string               `json:"journalEntryID"` // Nullable FK -> JournalEntry
	AuditFields
}
