package accounting_test

import (
	"testing"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/lumasoft/lending-ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(accountID string, dir domain.EntryDirection, amount string) domain.JournalEntry {
	return domain.JournalEntry{
		LedgerAccountID: accountID,
		Direction:       dir,
		Amount:          decimal.RequireFromString(amount),
	}
}

func TestSignedBalance(t *testing.T) {
	// LIABILITY with CREDIT 100 / DEBIT 30 carries 70.
	net := accounting.SignedBalance(domain.Liability, 300000, 1000000)
	assert.Equal(t, int64(700000), net)

	// Same postings on an ASSET flip the sign.
	net = accounting.SignedBalance(domain.Asset, 300000, 1000000)
	assert.Equal(t, int64(-700000), net)
}

func TestSuspenseNet(t *testing.T) {
	entries := []domain.JournalEntry{
		entry("suspense", domain.Debit, "500"),
		entry("cash", domain.Credit, "500"),
		entry("suspense", domain.Credit, "300"),
	}
	assert.Equal(t, int64(2000000), accounting.SuspenseNet(entries, "suspense"))

	entries = append(entries, entry("suspense", domain.Credit, "200"))
	assert.Equal(t, int64(0), accounting.SuspenseNet(entries, "suspense"))
}
