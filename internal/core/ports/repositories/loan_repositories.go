package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
)

// LoanRepositoryFacade persists loans and loan types.
type LoanRepositoryFacade interface {
	// FindLoanByID retrieves a loan.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// FindOpenLoanByAccount returns the PENDING or ACTIVE loan on an account,
	// or ErrNotFound when there is none.
	FindOpenLoanByAccount(ctx context.Context, accountID string) (*domain.Loan, error)

	// FindLoanTypeByID retrieves a loan type.
	FindLoanTypeByID(ctx context.Context, loanTypeID string) (*domain.LoanType, error)

	// SaveLoanInTx inserts a loan.
	SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error

	// UpdateLoanStatusInTx moves a loan through its lifecycle.
	UpdateLoanStatusInTx(ctx context.Context, tx pgx.Tx, loanID string, status domain.LoanStatus, updatedBy string, updatedAt time.Time) error
}

// InstallmentRepositoryFacade persists the repayment schedule of loans.
type InstallmentRepositoryFacade interface {
	// FindInstallmentByID retrieves one installment.
	FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error)

	// FindInstallmentsByLoanID retrieves a loan's schedule ordered by sequence.
	FindInstallmentsByLoanID(ctx context.Context, loanID string) ([]domain.Installment, error)

	// SaveInstallmentsInTx inserts a full schedule.
	SaveInstallmentsInTx(ctx context.Context, tx pgx.Tx, installments []domain.Installment) error

	// UpdateInstallmentAllocationInTx sets status and journal-entry stamp of
	// one installment. A nil journalEntryID clears the stamp.
	UpdateInstallmentAllocationInTx(ctx context.Context, tx pgx.Tx, installmentID string, status domain.InstallmentStatus, journalEntryID *string, updatedBy string, updatedAt time.Time) error

	// ActivateInstallmentsByLoanInTx bulk-transitions a loan's PENDING
	// installments to ACTIVE.
	ActivateInstallmentsByLoanInTx(ctx context.Context, tx pgx.Tx, loanID string, updatedBy string, updatedAt time.Time) error
}

// SubscriptionFeeRepositoryFacade persists periodic account fees.
type SubscriptionFeeRepositoryFacade interface {
	// FindSubscriptionFeeByID retrieves one fee row.
	FindSubscriptionFeeByID(ctx context.Context, feeID string) (*domain.SubscriptionFee, error)

	// SaveSubscriptionFee inserts a new fee row.
	SaveSubscriptionFee(ctx context.Context, fee domain.SubscriptionFee) error

	// UpdateSubscriptionFeeAllocationInTx sets status and journal-entry stamp
	// of one fee row. A nil journalEntryID clears the stamp.
	UpdateSubscriptionFeeAllocationInTx(ctx context.Context, tx pgx.Tx, feeID string, status domain.SubscriptionFeeStatus, journalEntryID *string, updatedBy string, updatedAt time.Time) error
}
