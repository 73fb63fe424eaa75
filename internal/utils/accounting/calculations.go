package accounting

import (
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/lumasoft/lending-ledger/internal/utils/money"
)

// SignedBalance applies the standard sign convention for an account type.
// ASSET/EXPENSE accounts carry debit-normal balances, the rest credit-normal.
func SignedBalance(accountType domain.AccountType, debitMinor, creditMinor int64) int64 {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debitMinor - creditMinor
	default: // Liability, Equity, Income
		return creditMinor - debitMinor
	}
}

// SuspenseNet returns the debit-minus-credit net of the entries touching the
// given ledger account, in minor units. A transaction is fully allocated
// once this nets to zero for its suspense account.
func SuspenseNet(entries []domain.JournalEntry, ledgerAccountID string) int64 {
	var net int64
	for _, e := range entries {
		if e.LedgerAccountID != ledgerAccountID {
			continue
		}
		m := money.ToMinorUnits(e.Amount)
		if e.Direction == domain.Debit {
			net += m
		} else {
			net -= m
		}
	}
	return net
}
