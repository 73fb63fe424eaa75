package dto

import (
	"time"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChargeSubscriptionFeeRequest raises one periodic fee on an account.
type ChargeSubscriptionFeeRequest struct {
	AccountID string `json:"accountID" binding:"required"`
	Period    string `json:"period" binding:"required"`
}

// SubscriptionFeeResponse defines the data returned for a periodic fee.
type SubscriptionFeeResponse struct {
	SubscriptionFeeID string          `json:"subscriptionFeeID"`
	AccountID         string          `json:"accountID"`
	Period            string          `json:"period"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToSubscriptionFeeResponse converts a domain.SubscriptionFee to its DTO.
func ToSubscriptionFeeResponse(f *domain.SubscriptionFee) SubscriptionFeeResponse {
	return SubscriptionFeeResponse{
		SubscriptionFeeID: f.SubscriptionFeeID,
		AccountID:         f.AccountID,
		Period:            f.Period,
		Amount:            f.Amount,
		Status:            string(f.Status),
		CreatedAt:         f.CreatedAt,
	}
}
