package cart

import (
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	"github.com/anandmehra/dailybasket-backend/pkg/types"
)

// PreviewItem is one cart line with its computed delivery calendar and cost.
type PreviewItem struct {
	ProductID     string              `json:"productId"`
	ProductName   string              `json:"productName"`
	Unit          string              `json:"unit"`
	Frequency     enums.Frequency     `json:"frequency"`
	Quantity      decimal.Decimal     `json:"quantity"`
	UnitPrice     decimal.Decimal     `json:"unitPrice"`
	MonthlyCharge decimal.Decimal     `json:"monthlyCharge"`
	DeliveryDates types.DeliveryDates `json:"deliveryDates"`
}

// Preview is the pre-checkout summary shown before slot selection.
type Preview struct {
	Items         []PreviewItem   `json:"items"`
	OneTimeTotal  decimal.Decimal `json:"oneTimeTotal"`
	MonthlyCharge decimal.Decimal `json:"monthlyCharge"`
}
