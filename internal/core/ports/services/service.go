package services

// ServiceContainer bundles all service facades for handler wiring.
type ServiceContainer struct {
	Posting      PostingSvcFacade
	Allocation   AllocationSvcFacade
	Balance      BalanceSvcFacade
	Transaction  TransactionSvcFacade
	Loan         LoanSvcFacade
	Subscription SubscriptionSvcFacade
}
