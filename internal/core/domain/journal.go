package domain

import "time"

// JournalStatus indicates the lifecycle state of a journal.
type JournalStatus string

const (
	JournalPending JournalStatus = "PENDING"
	JournalPosted  JournalStatus = "POSTED"
	JournalVoided  JournalStatus = "VOIDED"
)

// Journal is a named grouping of balanced entries for one accounting event.
// It is created PENDING and accepts further entries until its business
// transaction is approved; corrections after posting are reversing entries.
type Journal struct {
	JournalID     string         `json:"journalID"`     // Primary Key (UUID)
	TransactionID *string        `json:"transactionID"` // Nullable FK -> Transaction
	PostedAt      time.Time      `json:"postedAt"`
	Status        JournalStatus  `json:"status"`
	Note          string         `json:"note"`
	Entries       []JournalEntry `json:"entries,omitempty"` // Often loaded separately
	AuditFields
}
