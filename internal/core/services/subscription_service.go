package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/middleware"
)

// subscriptionService raises periodic account fees. Collection happens later
// through the allocation service.
type subscriptionService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	feeRepo     portsrepo.SubscriptionFeeRepositoryFacade
	feeAmount   decimal.Decimal
}

// NewSubscriptionService creates the subscription fee service. The fee
// amount is injected from configuration, never read from ambient state.
func NewSubscriptionService(accountRepo portsrepo.AccountRepositoryFacade, feeRepo portsrepo.SubscriptionFeeRepositoryFacade, feeAmount decimal.Decimal) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		accountRepo: accountRepo,
		feeRepo:     feeRepo,
		feeAmount:   feeAmount,
	}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// ChargeSubscriptionFee creates a PENDING fee row for the account and period.
func (s *subscriptionService) ChargeSubscriptionFee(ctx context.Context, accountID, period string) (*domain.SubscriptionFee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.Status != domain.AccountActive {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotActive, accountID)
	}

	now := time.Now().UTC()
	actor := middleware.GetActorFromCtx(ctx)
	fee := domain.SubscriptionFee{
		SubscriptionFeeID: uuid.NewString(),
		AccountID:         accountID,
		Period:            period,
		Amount:            s.feeAmount,
		Status:            domain.SubscriptionFeePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.feeRepo.SaveSubscriptionFee(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to save subscription fee: %w", err)
	}

	logger.Info("Subscription fee charged", slog.String("account_id", accountID), slog.String("period", period))
	return &fee, nil
}
