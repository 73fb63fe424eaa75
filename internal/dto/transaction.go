package dto

import (
	"time"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records one generic cash-in or cash-out movement.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=CASH_IN CASH_OUT"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	ExternalRef *string                `json:"externalRef,omitempty"`
	Note        string                 `json:"note"`
}

// TransactionResponse defines the data returned for a business transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	ExternalRef   *string         `json:"externalRef,omitempty"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		Status:        string(txn.Status),
		ExternalRef:   txn.ExternalRef,
		Note:          txn.Note,
		CreatedAt:     txn.CreatedAt,
	}
}
