package biztime

import (
	"fmt"
	"time"
)

// BillingPeriodLayout is the calendar-month key used by receipts and fee runs.
const BillingPeriodLayout = "2006-01"

// BillingPeriod is a validated "YYYY-MM" month key.
type BillingPeriod struct {
	year  int
	month time.Month
}

// ParseBillingPeriod validates a "YYYY-MM" key and returns the period.
func ParseBillingPeriod(s string) (BillingPeriod, error) {
	t, err := time.Parse(BillingPeriodLayout, s)
	if err != nil {
		return BillingPeriod{}, fmt.Errorf("invalid billing period %q, expected YYYY-MM: %w", s, err)
	}
	return BillingPeriod{year: t.Year(), month: t.Month()}, nil
}

// String returns the canonical "YYYY-MM" key.
func (p BillingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

// Year returns the period's year.
func (p BillingPeriod) Year() int {
	return p.year
}

// Month returns the period's month.
func (p BillingPeriod) Month() time.Month {
	return p.month
}

// Range returns the closed [first instant, last instant] of the month in
// UTC, using the business timezone to resolve the day boundaries.
func (p BillingPeriod) Range() (start, end time.Time) {
	return StartOfMonthUTC(p.year, p.month), EndOfMonthUTC(p.year, p.month)
}
