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
	"github.com/lumasoft/lending-ledger/internal/utils/money"
)

// postingService implements the balanced-posting use case.
type postingService struct {
	txManager         portsrepo.TransactionManager
	ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade
	journalRepo       portsrepo.JournalRepositoryFacade
}

// NewPostingService creates the balanced-posting service.
func NewPostingService(txManager portsrepo.TransactionManager, ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{
		txManager:         txManager,
		ledgerAccountRepo: ledgerAccountRepo,
		journalRepo:       journalRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// validateSpecs checks amounts and the global debit/credit balance in minor
// units before anything is resolved or written.
func (s *postingService) validateSpecs(specs []dto.EntrySpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: journal requires at least one entry", apperrors.ErrValidation)
	}

	var debitMinor, creditMinor int64
	for _, spec := range specs {
		if !spec.Amount.IsPositive() {
			return fmt.Errorf("%w: entry amount must be positive for account %s", apperrors.ErrValidation, spec.LedgerAccountCode)
		}
		m := money.ToMinorUnits(spec.Amount)
		if spec.Direction == domain.Debit {
			debitMinor += m
		} else {
			creditMinor += m
		}
	}

	if debitMinor != creditMinor {
		return &apperrors.UnbalancedJournalError{
			DebitTotal:  money.FormatMinor(debitMinor),
			CreditTotal: money.FormatMinor(creditMinor),
		}
	}
	return nil
}

// resolveAccounts maps every spec code to an active ledger account.
func (s *postingService) resolveAccounts(ctx context.Context, specs []dto.EntrySpec) (map[string]domain.LedgerAccount, error) {
	codes := make([]string, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, ok := seen[spec.LedgerAccountCode]; !ok {
			seen[spec.LedgerAccountCode] = struct{}{}
			codes = append(codes, spec.LedgerAccountCode)
		}
	}

	accounts, err := s.ledgerAccountRepo.FindLedgerAccountsByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ledger accounts: %w", err)
	}
	for _, code := range codes {
		account, found := accounts[code]
		if !found {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownLedgerAccount, code)
		}
		if account.Status != domain.LedgerAccountActive {
			return nil, fmt.Errorf("%w: ledger account %s is inactive", apperrors.ErrValidation, code)
		}
	}
	return accounts, nil
}

// PostJournalInTx validates the entry set and inserts the journal plus its
// entries inside the caller's transaction. Entries keep caller order.
func (s *postingService) PostJournalInTx(ctx context.Context, tx pgx.Tx, transactionID, note string, specs []dto.EntrySpec, removable bool) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateSpecs(specs); err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx, specs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)
	journalID := uuid.NewString()

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}

	journal := domain.Journal{
		JournalID:     journalID,
		TransactionID: &transactionID,
		PostedAt:      now,
		Status:        domain.JournalPending,
		Note:          note,
		AuditFields:   audit,
	}

	entries := make([]domain.JournalEntry, len(specs))
	for i, spec := range specs {
		entries[i] = domain.JournalEntry{
			EntryID:         uuid.NewString(),
			JournalID:       journalID,
			LineNo:          i + 1,
			LedgerAccountID: accounts[spec.LedgerAccountCode].LedgerAccountID,
			Direction:       spec.Direction,
			Amount:          spec.Amount,
			Target:          spec.Target(),
			Removable:       removable,
			AuditFields:     audit,
		}
	}

	if err := s.journalRepo.SaveJournalInTx(ctx, tx, journal, entries); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	journal.Entries = entries
	return &journal, nil
}

// CreateJournal validates and atomically persists a new journal with its
// entries. Nothing is written when any entry fails validation.
func (s *postingService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	journal, err := s.PostJournalInTx(ctx, tx, req.TransactionID, req.Note, req.Entries, false)
	if err != nil {
		var unbalanced *apperrors.UnbalancedJournalError
		if errors.As(err, &unbalanced) {
			logger.Warn("Rejected unbalanced journal",
				slog.String("transaction_id", req.TransactionID),
				slog.String("debit_total", unbalanced.DebitTotal),
				slog.String("credit_total", unbalanced.CreditTotal),
			)
		}
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Journal created", slog.String("journal_id", journal.JournalID), slog.Int("entry_count", len(journal.Entries)))
	return journal, nil
}

// GetJournalByID returns a journal with its entries in line order.
func (s *postingService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrJournalNotFound, journalID)
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for journal %s: %w", journalID, err)
	}
	journal.Entries = entries
	return journal, nil
}
