package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerAccountRepo := newPgxLedgerAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	loanRepo := newPgxLoanRepository(dbPool)
	installmentRepo := newPgxInstallmentRepository(dbPool)
	subscriptionFeeRepo := newPgxSubscriptionFeeRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:           &BaseRepository{Pool: dbPool},
		LedgerAccountRepo:   ledgerAccountRepo,
		JournalRepo:         journalRepo,
		AccountRepo:         accountRepo,
		LoanRepo:            loanRepo,
		InstallmentRepo:     installmentRepo,
		SubscriptionFeeRepo: subscriptionFeeRepo,
		TransactionRepo:     transactionRepo,
	}
}
