package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	"github.com/lumasoft/lending-ledger/internal/models"
	"github.com/lumasoft/lending-ledger/internal/utils/mapping"
)

type PgxInstallmentRepository struct {
	BaseRepository
}

// newPgxInstallmentRepository creates the installment schedule repository.
func newPgxInstallmentRepository(pool *pgxpool.Pool) portsrepo.InstallmentRepositoryFacade {
	return &PgxInstallmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

const installmentColumns = `
	installment_id, loan_id, sequence, amount, due_date, status, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanInstallment(row pgx.Row) (*models.Installment, error) {
	var m models.Installment
	err := row.Scan(
		&m.InstallmentID,
		&m.LoanID,
		&m.Sequence,
		&m.Amount,
		&m.DueDate,
		&m.Status,
		&m.JournalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindInstallmentByID retrieves one installment.
func (r *PgxInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE installment_id = $1;`

	m, err := scanInstallment(r.Pool.QueryRow(ctx, query, installmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find installment by ID %s: %w", installmentID, err)
	}

	installment := mapping.ToDomainInstallment(*m)
	return &installment, nil
}

// FindInstallmentsByLoanID retrieves a loan's schedule ordered by sequence.
func (r *PgxInstallmentRepository) FindInstallmentsByLoanID(ctx context.Context, loanID string) ([]domain.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE loan_id = $1
		ORDER BY sequence;
	`

	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments for loan %s: %w", loanID, err)
	}
	defer rows.Close()

	var installments []domain.Installment
	for rows.Next() {
		m, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		installments = append(installments, mapping.ToDomainInstallment(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", err)
	}
	return installments, nil
}

// SaveInstallmentsInTx inserts a full schedule in one batch.
func (r *PgxInstallmentRepository) SaveInstallmentsInTx(ctx context.Context, tx pgx.Tx, installments []domain.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	query := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	batch := &pgx.Batch{}
	for _, installment := range installments {
		m := mapping.ToModelInstallment(installment)
		batch.Queue(query,
			m.InstallmentID,
			m.LoanID,
			m.Sequence,
			m.Amount,
			m.DueDate,
			m.Status,
			m.JournalEntryID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range installments {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert installment %s: %w", installments[i].InstallmentID, err)
		}
	}
	return results.Close()
}

// UpdateInstallmentAllocationInTx sets status and journal-entry stamp.
func (r *PgxInstallmentRepository) UpdateInstallmentAllocationInTx(ctx context.Context, tx pgx.Tx, installmentID string, status domain.InstallmentStatus, journalEntryID *string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE installments
		SET status = $2, journal_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE installment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, installmentID, status, journalEntryID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update installment allocation for %s: %w", installmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ActivateInstallmentsByLoanInTx bulk-transitions PENDING installments to ACTIVE.
func (r *PgxInstallmentRepository) ActivateInstallmentsByLoanInTx(ctx context.Context, tx pgx.Tx, loanID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE installments
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE loan_id = $1 AND status = $5;
	`
	_, err := tx.Exec(ctx, query, loanID, domain.InstallmentActive, updatedAt, updatedBy, domain.InstallmentPending)
	if err != nil {
		return fmt.Errorf("failed to activate installments for loan %s: %w", loanID, err)
	}
	return nil
}
