package services

import (
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/platform/config"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	chart := cfg.Chart()

	container := &portssvc.ServiceContainer{}

	container.Posting = NewPostingService(repos.TxManager, repos.LedgerAccountRepo, repos.JournalRepo)
	container.Allocation = NewAllocationService(
		repos.TxManager,
		repos.LedgerAccountRepo,
		repos.JournalRepo,
		repos.InstallmentRepo,
		repos.SubscriptionFeeRepo,
		repos.TransactionRepo,
		chart,
	)
	container.Balance = NewBalanceService(repos.LedgerAccountRepo, repos.LoanRepo, repos.InstallmentRepo, chart)
	container.Transaction = NewTransactionService(repos.TxManager, repos.AccountRepo, repos.TransactionRepo, container.Posting, chart)
	container.Loan = NewLoanService(
		repos.TxManager,
		repos.AccountRepo,
		repos.LoanRepo,
		repos.InstallmentRepo,
		repos.TransactionRepo,
		repos.JournalRepo,
		repos.LedgerAccountRepo,
		container.Posting,
		chart,
	)
	container.Subscription = NewSubscriptionService(repos.AccountRepo, repos.SubscriptionFeeRepo, cfg.SubscriptionFeeAmount)

	return container
}
