package dto

import (
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddEntryRequest appends one allocation (suspense debit + typed credit) to
// an open journal.
type AddEntryRequest struct {
	Amount         decimal.Decimal       `json:"amount" binding:"required"`
	AllocationType domain.AllocationType `json:"allocationType" binding:"required,oneof=ACCOUNT_BALANCE LOAN_REPAYMENT SUBSCRIPTION_FEE"`
	TargetKind     *domain.TargetKind    `json:"targetKind,omitempty"`
	TargetID       *string               `json:"targetID,omitempty"`
}

// Target builds the entry target variant from the optional pair, or nil.
func (r AddEntryRequest) Target() *domain.EntryTarget {
	if r.TargetKind == nil || r.TargetID == nil {
		return nil
	}
	return &domain.EntryTarget{Kind: *r.TargetKind, ID: *r.TargetID}
}
