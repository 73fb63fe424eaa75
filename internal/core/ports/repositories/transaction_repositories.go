package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
)

// TransactionRepositoryFacade persists business transactions.
type TransactionRepositoryFacade interface {
	// FindTransactionByID retrieves a transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByExternalRef retrieves a transaction by its unique
	// external reference, or ErrNotFound.
	FindTransactionByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error)

	// SaveTransactionInTx inserts a transaction.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// UpdateTransactionStatusInTx flips allocation status.
	UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error
}
