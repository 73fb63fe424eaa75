package domain

// AccountStatus marks whether a customer account may transact.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Account is a customer account, the payer/owner side of transactions and loans.
type Account struct {
	AccountID string        `json:"accountID"` // Primary Key (UUID)
	Number    string        `json:"number"`    // Human-facing account number
	OwnerName string        `json:"ownerName"`
	Status    AccountStatus `json:"status"`
	AuditFields
}
