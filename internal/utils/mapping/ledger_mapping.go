package mapping

import (
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/lumasoft/lending-ledger/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToDomainLedgerAccount converts a ledger account row to the domain type.
func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		LedgerAccountID: m.LedgerAccountID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Status:          domain.LedgerAccountStatus(m.Status),
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

// ToModelJournal converts a domain journal to its row representation.
func ToModelJournal(j domain.Journal) models.Journal {
	return models.Journal{
		JournalID:     j.JournalID,
		TransactionID: j.TransactionID,
		PostedAt:      j.PostedAt,
		Status:        string(j.Status),
		Note:          j.Note,
		AuditFields:   toModelAudit(j.AuditFields),
	}
}

// ToDomainJournal converts a journal row to the domain type.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:     m.JournalID,
		TransactionID: m.TransactionID,
		PostedAt:      m.PostedAt,
		Status:        domain.JournalStatus(m.Status),
		Note:          m.Note,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain entry to its row representation,
// flattening the target variant into the nullable column pair.
func ToModelJournalEntry(e domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:         e.EntryID,
		JournalID:       e.JournalID,
		LineNo:          e.LineNo,
		LedgerAccountID: e.LedgerAccountID,
		Direction:       string(e.Direction),
		Amount:          e.Amount,
		Removable:       e.Removable,
		AuditFields:     toModelAudit(e.AuditFields),
	}
	if e.Target != nil {
		kind := string(e.Target.Kind)
		id := e.Target.ID
		m.TargetKind = &kind
		m.TargetID = &id
	}
	return m
}

// ToDomainJournalEntry converts an entry row to the domain type, rebuilding
// the target variant when both columns are present.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	e := domain.JournalEntry{
		EntryID:         m.EntryID,
		JournalID:       m.JournalID,
		LineNo:          m.LineNo,
		LedgerAccountID: m.LedgerAccountID,
		Direction:       domain.EntryDirection(m.Direction),
		Amount:          m.Amount,
		Removable:       m.Removable,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
	if m.TargetKind != nil && m.TargetID != nil {
		e.Target = &domain.EntryTarget{Kind: domain.TargetKind(*m.TargetKind), ID: *m.TargetID}
	}
	return e
}

// ToDomainJournalEntrySlice converts entry rows to domain types.
func ToDomainJournalEntrySlice(rows []models.JournalEntry) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(rows))
	for i, m := range rows {
		entries[i] = ToDomainJournalEntry(m)
	}
	return entries
}
