package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	"github.com/anandmehra/dailybasket-backend/pkg/types"
)

// OrderList is one page of a session's order history.
type OrderList struct {
	Orders     []models.Order
	NextCursor *string
}

// ItemView is the customer-facing shape of one line item.
type ItemView struct {
	Position      int                  `json:"position"`
	ProductID     string               `json:"productId"`
	ProductName   string               `json:"productName"`
	Unit          string               `json:"unit"`
	Frequency     enums.Frequency      `json:"frequency"`
	Quantity      decimal.Decimal      `json:"quantity"`
	UnitPrice     decimal.Decimal      `json:"unitPrice"`
	MonthlyCharge decimal.Decimal      `json:"monthlyCharge"`
	SerialNumber  string               `json:"serialNumber"`
	Status        enums.LineItemStatus `json:"status"`
	ReturnReason  *enums.ReturnReason  `json:"returnReason,omitempty"`
	DeliveryDates types.DeliveryDates  `json:"deliveryDates"`
}

// OrderView is the customer-facing shape of one order.
type OrderView struct {
	ID             string            `json:"id"`
	Date           string            `json:"date"`
	DeliverySlotID string            `json:"deliverySlotId"`
	Status         enums.OrderStatus `json:"status"`
	OneTimeTotal   decimal.Decimal   `json:"oneTimeTotal"`
	MonthlyCharge  decimal.Decimal   `json:"monthlyCharge"`
	PaymentDue     string            `json:"paymentDue"`
	DaysRemaining  int               `json:"daysRemaining"`
	Items          []ItemView        `json:"items"`
}

// OrderListView is the paginated order history response.
type OrderListView struct {
	Orders     []OrderView `json:"orders"`
	NextCursor *string     `json:"nextCursor,omitempty"`
}

// BuildOrderView converts a persisted order into its response shape.
func BuildOrderView(order *models.Order, now time.Time) OrderView {
	items := make([]ItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemView{
			Position:      item.Position,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Unit:          item.Unit,
			Frequency:     item.Frequency,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			MonthlyCharge: item.MonthlyCharge,
			SerialNumber:  item.SerialNumber,
			Status:        item.Status,
			ReturnReason:  item.ReturnReason,
			DeliveryDates: item.DeliveryDates,
		})
	}
	return OrderView{
		ID:             order.PublicID,
		Date:           order.CreatedAt.Format(types.DateLayout),
		DeliverySlotID: order.DeliverySlotID,
		Status:         order.Status,
		OneTimeTotal:   order.OneTimeTotal,
		MonthlyCharge:  order.MonthlyCharge,
		PaymentDue:     order.PaymentDueDate.Format(types.DateLayout),
		DaysRemaining:  DaysRemaining(order.PaymentDueDate, now),
		Items:          items,
	}
}

// DaysRemaining returns the whole calendar days until due. Zero means the
// payment is due today; negative values mean it is overdue.
func DaysRemaining(due, now time.Time) int {
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(today).Hours() / 24)
}

// OrderFinalizedEvent is emitted when a checkout commits.
type OrderFinalizedEvent struct {
	OrderID        uuid.UUID       `json:"order_id"`
	PublicID       string          `json:"public_id"`
	SessionID      uuid.UUID       `json:"session_id"`
	DeliverySlotID string          `json:"delivery_slot_id"`
	OneTimeTotal   decimal.Decimal `json:"one_time_total"`
	MonthlyCharge  decimal.Decimal `json:"monthly_charge"`
	ItemCount      int             `json:"item_count"`
}

// ItemCancelledEvent is emitted when a pending line item is cancelled.
type ItemCancelledEvent struct {
	OrderID      uuid.UUID `json:"order_id"`
	PublicID     string    `json:"public_id"`
	Position     int       `json:"position"`
	SerialNumber string    `json:"serial_number"`
}

// ItemReturnedEvent is emitted when a delivered line item is returned.
type ItemReturnedEvent struct {
	OrderID      uuid.UUID          `json:"order_id"`
	PublicID     string             `json:"public_id"`
	Position     int                `json:"position"`
	SerialNumber string             `json:"serial_number"`
	Reason       enums.ReturnReason `json:"reason"`
}

// OrderPaidEvent is emitted when an order is marked paid.
type OrderPaidEvent struct {
	OrderID  uuid.UUID `json:"order_id"`
	PublicID string    `json:"public_id"`
	PaidAt   time.Time `json:"paid_at"`
}
