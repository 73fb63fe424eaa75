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

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates the loan and loan-type repository.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `
	loan_id, account_id, loan_type_id, amount, commission_amount,
	payment_months, start_date, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanLoan(row pgx.Row) (*models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.AccountID,
		&m.LoanTypeID,
		&m.Amount,
		&m.CommissionAmount,
		&m.PaymentMonths,
		&m.StartDate,
		&m.Status,
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

// FindLoanByID retrieves a loan.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`

	m, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}

	loan := mapping.ToDomainLoan(*m)
	return &loan, nil
}

// FindOpenLoanByAccount returns the PENDING or ACTIVE loan on an account.
func (r *PgxLoanRepository) FindOpenLoanByAccount(ctx context.Context, accountID string) (*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE account_id = $1 AND status IN ('PENDING', 'ACTIVE')
		ORDER BY created_at DESC
		LIMIT 1;
	`

	m, err := scanLoan(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open loan for account %s: %w", accountID, err)
	}

	loan := mapping.ToDomainLoan(*m)
	return &loan, nil
}

// FindLoanTypeByID retrieves a loan type.
func (r *PgxLoanRepository) FindLoanTypeByID(ctx context.Context, loanTypeID string) (*domain.LoanType, error) {
	query := `
		SELECT loan_type_id, name, min_months, max_months, commission_percentage,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM loan_types
		WHERE loan_type_id = $1;
	`

	var m models.LoanType
	err := r.Pool.QueryRow(ctx, query, loanTypeID).Scan(
		&m.LoanTypeID,
		&m.Name,
		&m.MinMonths,
		&m.MaxMonths,
		&m.CommissionPercentage,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan type by ID %s: %w", loanTypeID, err)
	}

	loanType := mapping.ToDomainLoanType(m)
	return &loanType, nil
}

// SaveLoanInTx inserts a loan.
func (r *PgxLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.LoanID,
		m.AccountID,
		m.LoanTypeID,
		m.Amount,
		m.CommissionAmount,
		m.PaymentMonths,
		m.StartDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan %s: %w", m.LoanID, err)
	}
	return nil
}

// UpdateLoanStatusInTx moves a loan through its lifecycle.
func (r *PgxLoanRepository) UpdateLoanStatusInTx(ctx context.Context, tx pgx.Tx, loanID string, status domain.LoanStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE loans
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE loan_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, loanID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update loan status for %s: %w", loanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
