package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/dto"
	"github.com/lumasoft/lending-ledger/internal/middleware"
	"github.com/lumasoft/lending-ledger/internal/utils/accounting"
	"github.com/lumasoft/lending-ledger/internal/utils/money"
	"github.com/lumasoft/lending-ledger/internal/utils/schedule"
)

// loanService orchestrates loan disbursement and approval together with
// their ledger footprint.
type loanService struct {
	txManager         portsrepo.TransactionManager
	accountRepo       portsrepo.AccountRepositoryFacade
	loanRepo          portsrepo.LoanRepositoryFacade
	installmentRepo   portsrepo.InstallmentRepositoryFacade
	transactionRepo   portsrepo.TransactionRepositoryFacade
	journalRepo       portsrepo.JournalRepositoryFacade
	ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade
	postingSvc        portssvc.PostingSvcFacade
	chart             domain.ChartOfAccounts
	notifier          portssvc.ApprovalNotifier
}

// LoanServiceOption configures optional collaborators of the loan service.
type LoanServiceOption func(*loanService)

// WithApprovalNotifier wires the post-approval notification hook.
func WithApprovalNotifier(notifier portssvc.ApprovalNotifier) LoanServiceOption {
	return func(s *loanService) {
		s.notifier = notifier
	}
}

// NewLoanService creates the loan orchestration service.
func NewLoanService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountRepositoryFacade,
	loanRepo portsrepo.LoanRepositoryFacade,
	installmentRepo portsrepo.InstallmentRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade,
	postingSvc portssvc.PostingSvcFacade,
	chart domain.ChartOfAccounts,
	opts ...LoanServiceOption,
) portssvc.LoanSvcFacade {
	s := &loanService{
		txManager:         txManager,
		accountRepo:       accountRepo,
		loanRepo:          loanRepo,
		installmentRepo:   installmentRepo,
		transactionRepo:   transactionRepo,
		journalRepo:       journalRepo,
		ledgerAccountRepo: ledgerAccountRepo,
		postingSvc:        postingSvc,
		chart:             chart,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// validateDisbursement runs every rule that must hold before the first write.
func (s *loanService) validateDisbursement(ctx context.Context, req dto.DisburseLoanRequest) (*domain.LoanType, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrValidation)
	}

	loanType, err := s.loanRepo.FindLoanTypeByID(ctx, req.LoanTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan type %s: %w", req.LoanTypeID, err)
	}
	if req.PaymentMonths < loanType.MinMonths || req.PaymentMonths > loanType.MaxMonths {
		return nil, fmt.Errorf("%w: %d months outside [%d,%d]", apperrors.ErrLoanLimitViolation, req.PaymentMonths, loanType.MinMonths, loanType.MaxMonths)
	}

	owner, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", req.AccountID, err)
	}
	if owner.Status != domain.AccountActive {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotActive, req.AccountID)
	}

	_, err = s.loanRepo.FindOpenLoanByAccount(ctx, req.AccountID)
	if err == nil {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrActiveLoanConflict, req.AccountID)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check open loans for account %s: %w", req.AccountID, err)
	}

	return loanType, nil
}

// lendingCapacityInTx computes Cash minus Customer Deposits while holding
// row locks on both accounts, so a concurrent disbursement cannot pass the
// same capacity check on stale sums.
func (s *loanService) lendingCapacityInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	accounts, err := s.ledgerAccountRepo.FindLedgerAccountsByCodes(ctx, []string{s.chart.Cash, s.chart.CustomerDeposits})
	if err != nil {
		return 0, fmt.Errorf("failed to resolve capacity accounts: %w", err)
	}
	cash, found := accounts[s.chart.Cash]
	if !found {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnknownLedgerAccount, s.chart.Cash)
	}
	deposits, found := accounts[s.chart.CustomerDeposits]
	if !found {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnknownLedgerAccount, s.chart.CustomerDeposits)
	}

	if err := s.ledgerAccountRepo.LockLedgerAccountsInTx(ctx, tx, []string{cash.LedgerAccountID, deposits.LedgerAccountID}); err != nil {
		return 0, fmt.Errorf("failed to lock capacity accounts: %w", err)
	}

	cashDebits, cashCredits, err := s.ledgerAccountRepo.SumEntriesByAccountInTx(ctx, tx, cash.LedgerAccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum cash entries: %w", err)
	}
	depDebits, depCredits, err := s.ledgerAccountRepo.SumEntriesByAccountInTx(ctx, tx, deposits.LedgerAccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum deposit entries: %w", err)
	}

	cashMinor := accounting.SignedBalance(cash.AccountType, money.ToMinorUnits(cashDebits), money.ToMinorUnits(cashCredits))
	depositsMinor := accounting.SignedBalance(deposits.AccountType, money.ToMinorUnits(depDebits), money.ToMinorUnits(depCredits))
	return cashMinor - depositsMinor, nil
}

// DisburseLoan creates the loan, posts its three-leg journal and generates
// the installment schedule in one atomic scope.
func (s *loanService) DisburseLoan(ctx context.Context, req dto.DisburseLoanRequest) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loanType, err := s.validateDisbursement(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}

	commission := money.FloorPercent(req.Amount, loanType.CommissionPercentage)
	netDisbursement := req.Amount.Sub(commission)

	loan := domain.Loan{
		LoanID:           uuid.NewString(),
		AccountID:        req.AccountID,
		LoanTypeID:       req.LoanTypeID,
		Amount:           req.Amount,
		CommissionAmount: commission,
		PaymentMonths:    req.PaymentMonths,
		StartDate:        req.StartDate,
		Status:           domain.LoanPending,
		AuditFields:      audit,
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Kind:          domain.CashOut,
		Amount:        req.Amount,
		Status:        domain.TransactionPending,
		Note:          fmt.Sprintf("Loan disbursement %s", loan.LoanID),
		AuditFields:   audit,
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	// Capacity check and disbursement legs stay in one locked scope.
	capacity, err := s.lendingCapacityInTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	if capacity < money.ToMinorUnits(req.Amount) {
		return nil, fmt.Errorf("%w: capacity %s, requested %s", apperrors.ErrInsufficientFunds, money.FormatMinor(capacity), money.Format(req.Amount))
	}

	if err := s.transactionRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return nil, fmt.Errorf("failed to save disbursement transaction: %w", err)
	}
	if err := s.loanRepo.SaveLoanInTx(ctx, tx, loan); err != nil {
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	loanTarget := domain.TargetLoan
	specs := []dto.EntrySpec{
		{LedgerAccountCode: s.chart.LoansReceivable, Amount: req.Amount, Direction: domain.Debit, TargetKind: &loanTarget, TargetID: &loan.LoanID},
		{LedgerAccountCode: s.chart.Cash, Amount: netDisbursement, Direction: domain.Credit},
	}
	// A commission that floors to zero gets no fee leg; the journal stays
	// balanced with the full amount credited to cash.
	if commission.IsPositive() {
		specs = append(specs, dto.EntrySpec{LedgerAccountCode: s.chart.FeeIncome, Amount: commission, Direction: domain.Credit})
	}
	if _, err := s.postingSvc.PostJournalInTx(ctx, tx, txn.TransactionID, txn.Note, specs, false); err != nil {
		return nil, err
	}

	installments := buildSchedule(loan, audit)
	if err := s.installmentRepo.SaveInstallmentsInTx(ctx, tx, installments); err != nil {
		return nil, fmt.Errorf("failed to save installment schedule: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Loan disbursed",
		slog.String("loan_id", loan.LoanID),
		slog.String("amount", money.Format(loan.Amount)),
		slog.String("commission", money.Format(commission)),
		slog.Int("installments", len(installments)),
	)
	return &loan, nil
}

// buildSchedule splits the principal into equal monthly installments due on
// the 1st, shifted an extra month for late-month start dates.
func buildSchedule(loan domain.Loan, audit domain.AuditFields) []domain.Installment {
	dueDates := schedule.DueDates(loan.StartDate, loan.PaymentMonths)
	amounts := schedule.SplitAmount(loan.Amount, loan.PaymentMonths)

	installments := make([]domain.Installment, loan.PaymentMonths)
	for i := 0; i < loan.PaymentMonths; i++ {
		installments[i] = domain.Installment{
			InstallmentID: uuid.NewString(),
			LoanID:        loan.LoanID,
			Sequence:      i + 1,
			Amount:        amounts[i],
			DueDate:       dueDates[i],
			Status:        domain.InstallmentPending,
			AuditFields:   audit,
		}
	}
	return installments
}

// ApproveLoan posts the loan's journal, allocates its transaction and
// activates the loan with its installments. Approving an ACTIVE loan is a
// no-op that returns it unchanged.
func (s *loanService) ApproveLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	if loan.Status == domain.LoanActive {
		logger.Debug("Loan already active, approval is a no-op", slog.String("loan_id", loanID))
		return loan, nil
	}

	// The journal is located through its disbursement entry.
	journal, err := s.journalRepo.FindJournalByEntryTarget(ctx, domain.TargetLoan, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no journal for loan %s", apperrors.ErrJournalNotFound, loanID)
		}
		return nil, fmt.Errorf("failed to find journal for loan %s: %w", loanID, err)
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.journalRepo.UpdateJournalStatusInTx(ctx, tx, journal.JournalID, domain.JournalPosted, actor, now); err != nil {
		return nil, fmt.Errorf("failed to post journal %s: %w", journal.JournalID, err)
	}
	if journal.TransactionID != nil {
		if err := s.transactionRepo.UpdateTransactionStatusInTx(ctx, tx, *journal.TransactionID, domain.TransactionAllocated, actor, now); err != nil {
			return nil, fmt.Errorf("failed to allocate transaction %s: %w", *journal.TransactionID, err)
		}
	}
	if err := s.loanRepo.UpdateLoanStatusInTx(ctx, tx, loanID, domain.LoanActive, actor, now); err != nil {
		return nil, fmt.Errorf("failed to activate loan %s: %w", loanID, err)
	}
	if err := s.installmentRepo.ActivateInstallmentsByLoanInTx(ctx, tx, loanID, actor, now); err != nil {
		return nil, fmt.Errorf("failed to activate installments for loan %s: %w", loanID, err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	loan.Status = domain.LoanActive
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = actor

	if s.notifier != nil {
		// Notification failure must not undo a committed approval.
		if err := s.notifier.LoanApproved(ctx, *loan); err != nil {
			logger.Warn("Post-approval notification failed", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Loan approved", slog.String("loan_id", loanID))
	return loan, nil
}

// GetLoanByID retrieves a loan.
func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	return s.loanRepo.FindLoanByID(ctx, loanID)
}

// ListInstallments retrieves a loan's schedule ordered by sequence.
func (s *loanService) ListInstallments(ctx context.Context, loanID string) ([]domain.Installment, error) {
	if _, err := s.loanRepo.FindLoanByID(ctx, loanID); err != nil {
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	return s.installmentRepo.FindInstallmentsByLoanID(ctx, loanID)
}
