package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerAccountReader defines read operations over the account registry.
type LedgerAccountReader interface {
	// FindLedgerAccountByCode resolves a single account by its unique code.
	FindLedgerAccountByCode(ctx context.Context, code string) (*domain.LedgerAccount, error)

	// FindLedgerAccountsByCodes resolves several codes at once, keyed by code.
	// Missing codes are simply absent from the result.
	FindLedgerAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.LedgerAccount, error)

	// ListLedgerAccounts returns the full chart of accounts.
	ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error)
}

// LedgerAccountLocker serializes concurrent postings over shared accounts.
type LedgerAccountLocker interface {
	// LockLedgerAccountsInTx takes row locks on the given accounts within tx,
	// so check-then-post sequences cannot interleave.
	LockLedgerAccountsInTx(ctx context.Context, tx pgx.Tx, ledgerAccountIDs []string) error
}

// BalanceWindow bounds a balance aggregation by posting date.
type BalanceWindow struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// BalanceReader aggregates entry totals for balance queries. Only entries of
// POSTED journals contribute.
type BalanceReader interface {
	// SumEntriesByAccount returns total debits and credits posted against one
	// ledger account, optionally bounded by posting date.
	SumEntriesByAccount(ctx context.Context, ledgerAccountID string, window BalanceWindow) (debits, credits decimal.Decimal, err error)

	// SumEntriesByAccountInTx is the same aggregation inside a transaction,
	// used by check-then-post sequences that hold account locks.
	SumEntriesByAccountInTx(ctx context.Context, tx pgx.Tx, ledgerAccountID string) (debits, credits decimal.Decimal, err error)
}

// JournalReader defines read operations for journals and their entries.
type JournalReader interface {
	// FindJournalByID retrieves a journal without its entries.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindJournalForUpdateInTx retrieves a journal within tx under a row lock,
	// so the entries read next cannot change until the transaction completes.
	FindJournalForUpdateInTx(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error)

	// FindEntriesByJournalID retrieves all entries of a journal in line order.
	FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error)

	// FindEntriesByJournalIDInTx is the same read within the caller's transaction.
	FindEntriesByJournalIDInTx(ctx context.Context, tx pgx.Tx, journalID string) ([]domain.JournalEntry, error)

	// FindEntryByIDInTx retrieves a single entry within the caller's
	// transaction, ahead of a delete that must see current state.
	FindEntryByIDInTx(ctx context.Context, tx pgx.Tx, entryID string) (*domain.JournalEntry, error)

	// FindJournalByEntryTarget locates the journal holding an entry that
	// points at the given business object (e.g. a loan's disbursement leg).
	FindJournalByEntryTarget(ctx context.Context, kind domain.TargetKind, targetID string) (*domain.Journal, error)
}

// JournalWriter defines write operations for journals and their entries.
// The InTx variants participate in a caller-owned transaction so journal
// writes commit atomically with dependent aggregate mutations.
type JournalWriter interface {
	// SaveJournalInTx inserts a journal and its entries in caller-given order.
	SaveJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, entries []domain.JournalEntry) error

	// AddEntriesInTx appends entries to an existing journal.
	AddEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error

	// DeleteEntryInTx removes a single entry.
	DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error

	// UpdateJournalStatusInTx moves a journal through its lifecycle.
	UpdateJournalStatusInTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// LedgerAccountRepositoryFacade combines registry reads, locking and balance
// aggregation for ledger accounts.
type LedgerAccountRepositoryFacade interface {
	LedgerAccountReader
	LedgerAccountLocker
	BalanceReader
}
