// Package billing computes the charges for subscription line items. All
// arithmetic runs on decimals; rupee amounts are never floats.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/internal/scheduling"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
)

// Line is the pricing view of one cart or order item.
type Line struct {
	Frequency enums.Frequency
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Totals summarizes an order's charges. BaseTotal is the one-time sum of
// unit price times quantity across every line; MonthlyCharge scales each
// recurring line by its delivery count.
type Totals struct {
	BaseTotal     decimal.Decimal
	MonthlyCharge decimal.Decimal
}

// BaseAmount returns unit price times quantity for one line.
func BaseAmount(line Line) decimal.Decimal {
	return line.UnitPrice.Mul(line.Quantity)
}

// MonthlyCharge returns what one line costs over ref's month. Daily lines pay
// per weekday delivery, weekly lines pay per weekly delivery, one-time and
// monthly lines pay the base amount once.
func MonthlyCharge(line Line, ref time.Time) decimal.Decimal {
	base := BaseAmount(line)
	switch line.Frequency {
	case enums.FrequencyDaily, enums.FrequencyWeekly:
		deliveries := len(scheduling.DeliveryDates(line.Frequency, ref))
		return base.Mul(decimal.NewFromInt(int64(deliveries)))
	default:
		return base
	}
}

// OrderTotals sums the charges across all lines.
func OrderTotals(lines []Line, ref time.Time) Totals {
	totals := Totals{
		BaseTotal:     decimal.Zero,
		MonthlyCharge: decimal.Zero,
	}
	for _, line := range lines {
		totals.BaseTotal = totals.BaseTotal.Add(BaseAmount(line))
		totals.MonthlyCharge = totals.MonthlyCharge.Add(MonthlyCharge(line, ref))
	}
	return totals
}
