package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
)

// Order is a finalized checkout. PublicID is the customer-facing number in
// the form ORD-NNN, allocated from the order_number counter.
type Order struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PublicID       string            `gorm:"column:public_id;not null;uniqueIndex"`
	SessionID      uuid.UUID         `gorm:"column:session_id;type:uuid;not null;index"`
	DeliverySlotID string            `gorm:"column:delivery_slot_id;not null"`
	Status         enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	OneTimeTotal   decimal.Decimal   `gorm:"column:one_time_total;type:numeric(12,2);not null"`
	MonthlyCharge  decimal.Decimal   `gorm:"column:monthly_charge;type:numeric(12,2);not null"`
	PaymentDueDate time.Time         `gorm:"column:payment_due_date;not null"`
	PaidAt         *time.Time        `gorm:"column:paid_at"`
	Items          []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
