package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/lumasoft/lending-ledger/internal/dto"
)

// PostingSvcFacade is the balanced-posting use case: validate an entry set
// and persist it atomically as a new journal.
type PostingSvcFacade interface {
	// CreateJournal validates and posts the entry set in its own storage
	// transaction. All-or-nothing.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error)

	// PostJournalInTx performs the same validation and insert inside a
	// caller-owned transaction, so orchestration flows can commit the
	// journal together with their aggregate mutations. Entries are written
	// with the given removable flag.
	PostJournalInTx(ctx context.Context, tx pgx.Tx, transactionID, note string, specs []dto.EntrySpec, removable bool) (*domain.Journal, error)

	// GetJournalByID returns a journal with its entries in line order.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
}

// AllocationSvcFacade appends partial allocations to open journals and keeps
// installment/fee/transaction statuses consistent with the suspense balance.
type AllocationSvcFacade interface {
	// AddEntry appends one allocation (suspense debit + typed credit) and
	// re-evaluates the owning transaction's allocation status.
	AddEntry(ctx context.Context, journalID string, req dto.AddEntryRequest) (*domain.Journal, error)

	// RemoveEntry deletes a removable entry, reverting any linked
	// installment or subscription fee, and re-evaluates allocation status.
	RemoveEntry(ctx context.Context, entryID string) error
}

// BalanceSvcFacade answers read-side balance and projection queries.
type BalanceSvcFacade interface {
	// GetAccountBalance computes a ledger account's balance under standard
	// sign conventions, as a fixed-scale decimal string.
	GetAccountBalance(ctx context.Context, code string, window dto.BalanceWindow) (string, error)

	// GetLendingCapacity returns Cash minus Customer Deposits.
	GetLendingCapacity(ctx context.Context) (string, error)

	// GetLoanOutstanding returns a loan's principal minus allocated repayments.
	GetLoanOutstanding(ctx context.Context, loanID string) (string, error)

	// ListLedgerAccounts returns the chart of accounts.
	ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error)
}
