// Package schedule derives installment schedules for disbursed loans.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// dueDayCutoff is the day of month after which the first installment shifts
// one extra month out.
const dueDayCutoff = 15

// DueDates returns one due date per month, always on the 1st. The first is
// the 1st of the month after start, or one month later when the start date
// falls after the cutoff.
func DueDates(start time.Time, months int) []time.Time {
	offset := 1
	if start.Day() > dueDayCutoff {
		offset = 2
	}

	dates := make([]time.Time, months)
	for i := 0; i < months; i++ {
		dates[i] = time.Date(start.Year(), start.Month()+time.Month(offset+i), 1, 0, 0, 0, 0, start.Location())
	}
	return dates
}

// SplitAmount divides total into the given number of equal parts at scale 4.
// The last part absorbs any rounding remainder so the parts sum exactly.
func SplitAmount(total decimal.Decimal, parts int) []decimal.Decimal {
	if parts <= 0 {
		return nil
	}

	each := total.Div(decimal.NewFromInt(int64(parts))).RoundDown(4)
	amounts := make([]decimal.Decimal, parts)
	running := decimal.Zero
	for i := 0; i < parts-1; i++ {
		amounts[i] = each
		running = running.Add(each)
	}
	amounts[parts-1] = total.Sub(running)
	return amounts
}
