package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/dto"
	"github.com/lumasoft/lending-ledger/internal/middleware"
)

// transactionService records generic cash-in/cash-out movements with their
// two-leg ledger footprint.
type transactionService struct {
	txManager       portsrepo.TransactionManager
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	postingSvc      portssvc.PostingSvcFacade
	chart           domain.ChartOfAccounts
}

// NewTransactionService creates the generic transaction service.
func NewTransactionService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, postingSvc portssvc.PostingSvcFacade, chart domain.ChartOfAccounts) portssvc.TransactionSvcFacade {
	return &transactionService{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		postingSvc:      postingSvc,
		chart:           chart,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// entrySpecs derives the two-leg footprint from the transaction kind.
func (s *transactionService) entrySpecs(txn domain.Transaction) []dto.EntrySpec {
	if txn.Kind == domain.CashIn {
		return []dto.EntrySpec{
			{LedgerAccountCode: s.chart.Cash, Amount: txn.Amount, Direction: domain.Debit},
			{LedgerAccountCode: s.chart.UnappliedReceipts, Amount: txn.Amount, Direction: domain.Credit},
		}
	}
	return []dto.EntrySpec{
		{LedgerAccountCode: s.chart.UnappliedDisbursements, Amount: txn.Amount, Direction: domain.Debit},
		{LedgerAccountCode: s.chart.Cash, Amount: txn.Amount, Direction: domain.Credit},
	}
}

// CreateTransaction validates the payer, creates the transaction and posts
// its journal. Any rule violation aborts before the first ledger write.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	payer, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", req.AccountID, err)
	}
	if payer.Status != domain.AccountActive {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotActive, req.AccountID)
	}

	if req.ExternalRef != nil {
		_, err := s.transactionRepo.FindTransactionByExternalRef(ctx, *req.ExternalRef)
		if err == nil {
			return nil, fmt.Errorf("%w: external ref %s", apperrors.ErrDuplicate, *req.ExternalRef)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check external ref: %w", err)
		}
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Kind:          req.Kind,
		Amount:        req.Amount,
		Status:        domain.TransactionPending,
		ExternalRef:   req.ExternalRef,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.transactionRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if _, err := s.postingSvc.PostJournalInTx(ctx, tx, txn.TransactionID, req.Note, s.entrySpecs(txn), false); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.String()),
	)
	return &txn, nil
}

// GetTransactionByID retrieves a transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}
