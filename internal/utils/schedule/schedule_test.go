package schedule_test

import (
	"testing"
	"time"

	"github.com/lumasoft/lending-ledger/internal/utils/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDueDates(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		months   int
		firstDue time.Time
		lastDue  time.Time
	}{
		{
			name:     "start before cutoff",
			start:    time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			months:   3,
			firstDue: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			lastDue:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "start after cutoff shifts one month",
			start:    time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
			months:   12,
			firstDue: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
			lastDue:  time.Date(2027, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "year rollover",
			start:    time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC),
			months:   2,
			firstDue: time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC),
			lastDue:  time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dates := schedule.DueDates(tc.start, tc.months)
			assert.Len(t, dates, tc.months)
			assert.Equal(t, tc.firstDue, dates[0])
			assert.Equal(t, tc.lastDue, dates[len(dates)-1])
			for _, d := range dates {
				assert.Equal(t, 1, d.Day())
			}
		})
	}
}

func TestSplitAmount(t *testing.T) {
	parts := schedule.SplitAmount(decimal.RequireFromString("1200"), 12)
	assert.Len(t, parts, 12)
	for _, p := range parts {
		assert.True(t, p.Equal(decimal.RequireFromString("100")), "got %s", p)
	}
}

func TestSplitAmountRemainderGoesLast(t *testing.T) {
	parts := schedule.SplitAmount(decimal.RequireFromString("100"), 3)
	assert.Len(t, parts, 3)

	sum := decimal.Zero
	for _, p := range parts {
		sum = sum.Add(p)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100")))
	assert.True(t, parts[0].Equal(decimal.RequireFromString("33.3333")))
	assert.True(t, parts[2].Equal(decimal.RequireFromString("33.3334")))
}
