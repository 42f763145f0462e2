// Package scheduling computes the delivery calendar for a subscription
// frequency within the billing month of a reference date.
package scheduling

import (
	"time"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
)

// DeliveryDates returns the delivery calendar for freq in ref's month.
// One-time items deliver on ref itself; daily items deliver on every weekday
// of the month; weekly items deliver on the 1st, 8th, 15th and 22nd; monthly
// items deliver once on the 1st.
func DeliveryDates(freq enums.Frequency, ref time.Time) []time.Time {
	monthStart := StartOfMonth(ref)
	monthEnd := EndOfMonth(ref)

	var dates []time.Time
	switch freq {
	case enums.FrequencyOneTime:
		dates = append(dates, truncateToDay(ref))

	case enums.FrequencyDaily:
		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			if isWeekend(d) {
				continue
			}
			dates = append(dates, d)
		}

	case enums.FrequencyWeekly:
		for i := 0; i < 4; i++ {
			d := monthStart.AddDate(0, 0, i*7)
			if d.After(monthEnd) {
				break
			}
			dates = append(dates, d)
		}

	case enums.FrequencyMonthly:
		dates = append(dates, monthStart)
	}

	return dates
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
