package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// LedgerAccountStatus marks whether a ledger account accepts new postings.
type LedgerAccountStatus string

const (
	LedgerAccountActive   LedgerAccountStatus = "ACTIVE"
	LedgerAccountInactive LedgerAccountStatus = "INACTIVE"
)

// LedgerAccount is a named posting target in the fixed chart of accounts.
// Accounts are never hard-deleted while entries reference them.
type LedgerAccount struct {
	LedgerAccountID string              `json:"ledgerAccountID"` // Primary Key (UUID)
	Code            string              `json:"code"`            // Unique, immutable
	Name            string              `json:"name"`
	AccountType     AccountType         `json:"accountType"`
	Status          LedgerAccountStatus `json:"status"`
	AuditFields
}

// ChartOfAccounts names the fixed accounts the posting flows depend on.
// Codes come from configuration; nothing in the core hardcodes them.
type ChartOfAccounts struct {
	Cash                   string
	LoansReceivable        string
	CustomerDeposits       string
	FeeIncome              string
	SubscriptionFeeIncome  string
	UnappliedReceipts      string // suspense account for incoming allocations
	UnappliedDisbursements string
}
