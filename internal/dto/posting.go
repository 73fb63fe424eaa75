package dto

import (
	"time"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntrySpec describes one leg of a journal to be posted.
type EntrySpec struct {
	LedgerAccountCode string                `json:"ledgerAccountCode" binding:"required"`
	Amount            decimal.Decimal       `json:"amount" binding:"required"`
	Direction         domain.EntryDirection `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	TargetKind        *domain.TargetKind    `json:"targetKind,omitempty"`
	TargetID          *string               `json:"targetID,omitempty"`
}

// Target builds the entry target variant from the optional pair, or nil.
func (s EntrySpec) Target() *domain.EntryTarget {
	if s.TargetKind == nil || s.TargetID == nil {
		return nil
	}
	return &domain.EntryTarget{Kind: *s.TargetKind, ID: *s.TargetID}
}

// CreateJournalRequest carries the full entry set for one balanced posting.
type CreateJournalRequest struct {
	TransactionID string      `json:"transactionID" binding:"required"`
	Note          string      `json:"note"`
	Entries       []EntrySpec `json:"entries" binding:"required,min=1,dive"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID         string              `json:"entryID"`
	LedgerAccountID string              `json:"ledgerAccountID"`
	Direction       string              `json:"direction"`
	Amount          decimal.Decimal     `json:"amount"`
	Target          *domain.EntryTarget `json:"target,omitempty"`
	Removable       bool                `json:"removable"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID     string          `json:"journalID"`
	TransactionID *string         `json:"transactionID,omitempty"`
	PostedAt      time.Time       `json:"postedAt"`
	Status        string          `json:"status"`
	Note          string          `json:"note"`
	Entries       []EntryResponse `json:"entries,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		LedgerAccountID: e.LedgerAccountID,
		Direction:       string(e.Direction),
		Amount:          e.Amount,
		Target:          e.Target,
		Removable:       e.Removable,
	}
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	entries := make([]EntryResponse, len(j.Entries))
	for i := range j.Entries {
		entries[i] = ToEntryResponse(&j.Entries[i])
	}
	return JournalResponse{
		JournalID:     j.JournalID,
		TransactionID: j.TransactionID,
		PostedAt:      j.PostedAt,
		Status:        string(j.Status),
		Note:          j.Note,
		Entries:       entries,
		CreatedAt:     j.CreatedAt,
	}
}
