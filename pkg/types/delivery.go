package types

import "time"

// DateLayout is the wire format for delivery dates.
const DateLayout = "2006-01-02"

// DeliveryDates is the ordered set of calendar dates a line item will be
// delivered on within its billing month, stored as YYYY-MM-DD strings.
type DeliveryDates []string

// FromTimes formats ts into a DeliveryDates slice.
func FromTimes(ts []time.Time) DeliveryDates {
	out := make(DeliveryDates, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Format(DateLayout))
	}
	return out
}
