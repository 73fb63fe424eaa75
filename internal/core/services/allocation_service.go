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
)

// allocationService appends partial allocations to open journals and keeps
// the owning transaction's allocation status in step with the suspense
// account's local balance.
type allocationService struct {
	txManager           portsrepo.TransactionManager
	ledgerAccountRepo   portsrepo.LedgerAccountRepositoryFacade
	journalRepo         portsrepo.JournalRepositoryFacade
	installmentRepo     portsrepo.InstallmentRepositoryFacade
	subscriptionFeeRepo portsrepo.SubscriptionFeeRepositoryFacade
	transactionRepo     portsrepo.TransactionRepositoryFacade
	chart               domain.ChartOfAccounts
}

// NewAllocationService creates the incremental allocation service.
func NewAllocationService(
	txManager portsrepo.TransactionManager,
	ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	installmentRepo portsrepo.InstallmentRepositoryFacade,
	subscriptionFeeRepo portsrepo.SubscriptionFeeRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	chart domain.ChartOfAccounts,
) portssvc.AllocationSvcFacade {
	return &allocationService{
		txManager:           txManager,
		ledgerAccountRepo:   ledgerAccountRepo,
		journalRepo:         journalRepo,
		installmentRepo:     installmentRepo,
		subscriptionFeeRepo: subscriptionFeeRepo,
		transactionRepo:     transactionRepo,
		chart:               chart,
	}
}

var _ portssvc.AllocationSvcFacade = (*allocationService)(nil)

// creditAccountCode maps an allocation type onto its credit-leg account.
func (s *allocationService) creditAccountCode(allocationType domain.AllocationType) (string, error) {
	switch allocationType {
	case domain.AllocateAccountBalance:
		return s.chart.CustomerDeposits, nil
	case domain.AllocateLoanRepayment:
		return s.chart.LoansReceivable, nil
	case domain.AllocateSubscriptionFee:
		return s.chart.SubscriptionFeeIncome, nil
	default:
		return "", fmt.Errorf("%w: unknown allocation type %q", apperrors.ErrValidation, allocationType)
	}
}

// loadPendingJournalInTx fetches the journal with entries inside tx, holding
// a row lock on the journal so the precondition check, the suspense-net
// evaluation and the writes all see one consistent entry set.
func (s *allocationService) loadPendingJournalInTx(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalForUpdateInTx(ctx, tx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrJournalNotFound, journalID)
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}
	if journal.Status != domain.JournalPending {
		return nil, fmt.Errorf("%w: journal %s is %s", apperrors.ErrJournalNotPending, journalID, journal.Status)
	}

	entries, err := s.journalRepo.FindEntriesByJournalIDInTx(ctx, tx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for journal %s: %w", journalID, err)
	}
	journal.Entries = entries
	return journal, nil
}

// stampTarget marks the allocated installment or fee row and links it to the
// credit entry that settled it.
func (s *allocationService) stampTarget(ctx context.Context, tx pgx.Tx, allocationType domain.AllocationType, target *domain.EntryTarget, entryID, actor string, now time.Time) error {
	switch allocationType {
	case domain.AllocateLoanRepayment:
		if target == nil || target.Kind != domain.TargetInstallment {
			return fmt.Errorf("%w: loan repayment allocation requires an installment target", apperrors.ErrValidation)
		}
		return s.installmentRepo.UpdateInstallmentAllocationInTx(ctx, tx, target.ID, domain.InstallmentAllocated, &entryID, actor, now)
	case domain.AllocateSubscriptionFee:
		if target == nil || target.Kind != domain.TargetSubscriptionFee {
			return fmt.Errorf("%w: subscription fee allocation requires a fee target", apperrors.ErrValidation)
		}
		return s.subscriptionFeeRepo.UpdateSubscriptionFeeAllocationInTx(ctx, tx, target.ID, domain.SubscriptionFeeAllocated, &entryID, actor, now)
	default:
		return nil
	}
}

// nextLineNo returns the first free line position after the existing entries.
func nextLineNo(entries []domain.JournalEntry) int {
	highest := 0
	for _, e := range entries {
		if e.LineNo > highest {
			highest = e.LineNo
		}
	}
	return highest + 1
}

// reconcileTransaction flips the owning transaction to ALLOCATED when the
// suspense subset nets to zero, and back to PENDING when it no longer does.
func (s *allocationService) reconcileTransaction(ctx context.Context, tx pgx.Tx, journal *domain.Journal, suspenseAccountID, actor string, now time.Time) error {
	if journal.TransactionID == nil {
		return nil
	}

	status := domain.TransactionPending
	if accounting.SuspenseNet(journal.Entries, suspenseAccountID) == 0 {
		status = domain.TransactionAllocated
	}
	return s.transactionRepo.UpdateTransactionStatusInTx(ctx, tx, *journal.TransactionID, status, actor, now)
}

// AddEntry appends a suspense debit plus a typed credit leg to an open
// journal, stamps the settled installment or fee, and re-evaluates the
// owning transaction's allocation status. One atomic scope.
func (s *allocationService) AddEntry(ctx context.Context, journalID string, req dto.AddEntryRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: allocation amount must be positive", apperrors.ErrValidation)
	}

	creditCode, err := s.creditAccountCode(req.AllocationType)
	if err != nil {
		return nil, err
	}

	accounts, err := s.ledgerAccountRepo.FindLedgerAccountsByCodes(ctx, []string{s.chart.UnappliedReceipts, creditCode})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve allocation accounts: %w", err)
	}
	suspense, found := accounts[s.chart.UnappliedReceipts]
	if !found {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownLedgerAccount, s.chart.UnappliedReceipts)
	}
	credit, found := accounts[creditCode]
	if !found {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownLedgerAccount, creditCode)
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	journal, err := s.loadPendingJournalInTx(ctx, tx, journalID)
	if err != nil {
		return nil, err
	}
	nextLine := nextLineNo(journal.Entries)

	debitLeg := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		JournalID:       journalID,
		LineNo:          nextLine,
		LedgerAccountID: suspense.LedgerAccountID,
		Direction:       domain.Debit,
		Amount:          req.Amount,
		Removable:       true,
		AuditFields:     audit,
	}
	creditLeg := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		JournalID:       journalID,
		LineNo:          nextLine + 1,
		LedgerAccountID: credit.LedgerAccountID,
		Direction:       domain.Credit,
		Amount:          req.Amount,
		Target:          req.Target(),
		Removable:       true,
		AuditFields:     audit,
	}

	if err := s.journalRepo.AddEntriesInTx(ctx, tx, []domain.JournalEntry{debitLeg, creditLeg}); err != nil {
		return nil, fmt.Errorf("failed to append allocation entries: %w", err)
	}

	if err := s.stampTarget(ctx, tx, req.AllocationType, creditLeg.Target, creditLeg.EntryID, actor, now); err != nil {
		return nil, err
	}

	journal.Entries = append(journal.Entries, debitLeg, creditLeg)
	if err := s.reconcileTransaction(ctx, tx, journal, suspense.LedgerAccountID, actor, now); err != nil {
		return nil, fmt.Errorf("failed to update transaction allocation status: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Allocation entry added",
		slog.String("journal_id", journalID),
		slog.String("allocation_type", string(req.AllocationType)),
		slog.String("amount", req.Amount.String()),
	)
	return journal, nil
}

// RemoveEntry deletes a removable entry, reverting the installment or fee it
// settled, and re-evaluates the owning transaction's allocation status.
func (s *allocationService) RemoveEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	suspense, err := s.ledgerAccountRepo.FindLedgerAccountByCode(ctx, s.chart.UnappliedReceipts)
	if err != nil {
		return fmt.Errorf("failed to resolve suspense account: %w", err)
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.txManager.Rollback(ctx, tx)

	entry, err := s.journalRepo.FindEntryByIDInTx(ctx, tx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrEntryNotFound, entryID)
		}
		return fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if !entry.Removable {
		return fmt.Errorf("%w: %s", apperrors.ErrEntryNotRemovable, entryID)
	}

	journal, err := s.loadPendingJournalInTx(ctx, tx, entry.JournalID)
	if err != nil {
		return err
	}

	if err := s.journalRepo.DeleteEntryInTx(ctx, tx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	// Deletion mirrors creation: the settled business object goes back to
	// its pre-allocation state and loses its journal-entry stamp.
	if entry.Target != nil {
		switch entry.Target.Kind {
		case domain.TargetInstallment:
			if err := s.installmentRepo.UpdateInstallmentAllocationInTx(ctx, tx, entry.Target.ID, domain.InstallmentActive, nil, actor, now); err != nil {
				return fmt.Errorf("failed to revert installment %s: %w", entry.Target.ID, err)
			}
		case domain.TargetSubscriptionFee:
			if err := s.subscriptionFeeRepo.UpdateSubscriptionFeeAllocationInTx(ctx, tx, entry.Target.ID, domain.SubscriptionFeePending, nil, actor, now); err != nil {
				return fmt.Errorf("failed to revert subscription fee %s: %w", entry.Target.ID, err)
			}
		}
	}

	remaining := journal.Entries[:0:0]
	for _, e := range journal.Entries {
		if e.EntryID != entryID {
			remaining = append(remaining, e)
		}
	}
	journal.Entries = remaining

	if err := s.reconcileTransaction(ctx, tx, journal, suspense.LedgerAccountID, actor, now); err != nil {
		return fmt.Errorf("failed to update transaction allocation status: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Allocation entry removed", slog.String("entry_id", entryID), slog.String("journal_id", entry.JournalID))
	return nil
}
