package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
)

// CartItem persists one product subscription in a session's cart. A session
// holds at most one row per product; re-adding replaces quantity and frequency.
type CartItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID uuid.UUID       `gorm:"column:session_id;type:uuid;not null;uniqueIndex:uq_cart_items_session_product"`
	ProductID string          `gorm:"column:product_id;not null;uniqueIndex:uq_cart_items_session_product"`
	Frequency enums.Frequency `gorm:"column:frequency;type:text;not null"`
	Quantity  decimal.Decimal `gorm:"column:quantity;type:numeric(6,2);not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
