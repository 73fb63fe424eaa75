package services

import (
	"context"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/lumasoft/lending-ledger/internal/dto"
)

// TransactionSvcFacade records generic business money movements.
type TransactionSvcFacade interface {
	// CreateTransaction validates the payer, creates the transaction and
	// posts its two-leg journal in one atomic scope.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// LoanSvcFacade orchestrates loan disbursement and approval.
type LoanSvcFacade interface {
	// DisburseLoan creates a loan, posts its three-leg disbursement journal
	// and generates the installment schedule, all in one atomic scope.
	DisburseLoan(ctx context.Context, req dto.DisburseLoanRequest) (*domain.Loan, error)

	// ApproveLoan posts the loan's journal, allocates its transaction and
	// activates the loan and its installments. Idempotent on ACTIVE loans.
	ApproveLoan(ctx context.Context, loanID string) (*domain.Loan, error)

	// GetLoanByID retrieves a loan.
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListInstallments retrieves a loan's schedule.
	ListInstallments(ctx context.Context, loanID string) ([]domain.Installment, error)
}

// SubscriptionSvcFacade raises periodic account fees for later allocation.
type SubscriptionSvcFacade interface {
	// ChargeSubscriptionFee creates a PENDING fee row for the period.
	ChargeSubscriptionFee(ctx context.Context, accountID, period string) (*domain.SubscriptionFee, error)
}

// ApprovalNotifier receives post-approval notifications. Delivery failure is
// a non-critical side effect and never rolls back a completed approval.
type ApprovalNotifier interface {
	LoanApproved(ctx context.Context, loan domain.Loan) error
}
