package repositories

// RepositoryProvider bundles all repositories plus the transaction manager
// for wiring through the service container.
type RepositoryProvider struct {
	TxManager           TransactionManager
	LedgerAccountRepo   LedgerAccountRepositoryFacade
	JournalRepo         JournalRepositoryFacade
	AccountRepo         AccountRepositoryFacade
	LoanRepo            LoanRepositoryFacade
	InstallmentRepo     InstallmentRepositoryFacade
	SubscriptionFeeRepo SubscriptionFeeRepositoryFacade
	TransactionRepo     TransactionRepositoryFacade
}
