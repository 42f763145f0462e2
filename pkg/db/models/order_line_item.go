package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	"github.com/anandmehra/dailybasket-backend/pkg/types"
)

// OrderLineItem captures the snapshot of one subscription within an order.
// Position is the zero-based index the item was checked out with; it stays
// stable across cancellations so item references never shift.
type OrderLineItem struct {
	ID            uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID            `gorm:"column:order_id;type:uuid;not null;uniqueIndex:uq_order_line_items_order_position"`
	Position      int                  `gorm:"column:position;not null;uniqueIndex:uq_order_line_items_order_position"`
	ProductID     string               `gorm:"column:product_id;not null"`
	ProductName   string               `gorm:"column:product_name;not null"`
	Unit          string               `gorm:"column:unit;not null"`
	Frequency     enums.Frequency      `gorm:"column:frequency;type:text;not null"`
	Quantity      decimal.Decimal      `gorm:"column:quantity;type:numeric(6,2);not null"`
	UnitPrice     decimal.Decimal      `gorm:"column:unit_price;type:numeric(10,2);not null"`
	MonthlyCharge decimal.Decimal      `gorm:"column:monthly_charge;type:numeric(12,2);not null"`
	SerialNumber  string               `gorm:"column:serial_number;not null;uniqueIndex"`
	Status        enums.LineItemStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	ReturnReason  *enums.ReturnReason  `gorm:"column:return_reason;type:text"`
	DeliveryDates types.DeliveryDates  `gorm:"column:delivery_dates;type:jsonb;serializer:json"`
	CancelledAt   *time.Time           `gorm:"column:cancelled_at"`
	ReturnedAt    *time.Time           `gorm:"column:returned_at"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
