package repositories

import (
	"context"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
)

// AccountRepositoryFacade persists customer accounts.
type AccountRepositoryFacade interface {
	// FindAccountByID retrieves a customer account.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// SaveAccount inserts a new customer account.
	SaveAccount(ctx context.Context, account domain.Account) error
}
