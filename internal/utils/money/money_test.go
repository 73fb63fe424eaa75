package money_test

import (
	"testing"

	"github.com/lumasoft/lending-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMinorUnitRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		minor int64
		out   string
	}{
		{"whole units", "1000", 10000000, "1000.0000"},
		{"four decimals", "980.1234", 9801234, "980.1234"},
		{"zero", "0", 0, "0.0000"},
		{"sub-minor rounds half up", "0.00005", 1, "0.0001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := decimal.RequireFromString(tc.in)
			m := money.ToMinorUnits(d)
			assert.Equal(t, tc.minor, m)
			assert.Equal(t, tc.out, money.FormatMinor(m))
		})
	}
}

func TestParseAmount(t *testing.T) {
	d, err := money.ParseAmount("12.5")
	assert.NoError(t, err)
	assert.Equal(t, "12.5000", money.Format(d))

	_, err = money.ParseAmount("-1")
	assert.Error(t, err)

	_, err = money.ParseAmount("not-a-number")
	assert.Error(t, err)
}

func TestFloorPercent(t *testing.T) {
	testCases := []struct {
		amount string
		pct    string
		want   string
	}{
		{"1000", "2", "20"},
		{"1050.5000", "2", "21"},
		{"999.9999", "2", "19"},
		{"100", "0", "0"},
	}

	for _, tc := range testCases {
		got := money.FloorPercent(decimal.RequireFromString(tc.amount), decimal.RequireFromString(tc.pct))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "floor(%s%% of %s) = %s, want %s", tc.pct, tc.amount, got, tc.want)
	}
}
