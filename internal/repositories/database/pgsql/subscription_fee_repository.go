package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	"github.com/lumasoft/lending-ledger/internal/models"
	"github.com/lumasoft/lending-ledger/internal/utils/mapping"
)

type PgxSubscriptionFeeRepository struct {
	BaseRepository
}

// newPgxSubscriptionFeeRepository creates the periodic account fee repository.
func newPgxSubscriptionFeeRepository(pool *pgxpool.Pool) portsrepo.SubscriptionFeeRepositoryFacade {
	return &PgxSubscriptionFeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SubscriptionFeeRepositoryFacade = (*PgxSubscriptionFeeRepository)(nil)

const subscriptionFeeColumns = `
	subscription_fee_id, account_id, period, amount, status, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindSubscriptionFeeByID retrieves one fee row.
func (r *PgxSubscriptionFeeRepository) FindSubscriptionFeeByID(ctx context.Context, feeID string) (*domain.SubscriptionFee, error) {
	query := `SELECT ` + subscriptionFeeColumns + ` FROM subscription_fees WHERE subscription_fee_id = $1;`

	var m models.SubscriptionFee
	err := r.Pool.QueryRow(ctx, query, feeID).Scan(
		&m.SubscriptionFeeID,
		&m.AccountID,
		&m.Period,
		&m.Amount,
		&m.Status,
		&m.JournalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription fee by ID %s: %w", feeID, err)
	}

	fee := mapping.ToDomainSubscriptionFee(m)
	return &fee, nil
}

// SaveSubscriptionFee inserts a new fee row.
func (r *PgxSubscriptionFeeRepository) SaveSubscriptionFee(ctx context.Context, fee domain.SubscriptionFee) error {
	m := mapping.ToModelSubscriptionFee(fee)
	query := `
		INSERT INTO subscription_fees (` + subscriptionFeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SubscriptionFeeID,
		m.AccountID,
		m.Period,
		m.Amount,
		m.Status,
		m.JournalEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: fee for account %s period %s already exists", apperrors.ErrDuplicate, m.AccountID, m.Period)
		}
		return fmt.Errorf("failed to insert subscription fee %s: %w", m.SubscriptionFeeID, err)
	}
	return nil
}

// UpdateSubscriptionFeeAllocationInTx sets status and journal-entry stamp.
func (r *PgxSubscriptionFeeRepository) UpdateSubscriptionFeeAllocationInTx(ctx context.Context, tx pgx.Tx, feeID string, status domain.SubscriptionFeeStatus, journalEntryID *string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE subscription_fees
		SET status = $2, journal_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE subscription_fee_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, feeID, status, journalEntryID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update subscription fee allocation for %s: %w", feeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
