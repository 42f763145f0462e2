package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/pagination"
)

// Repository defines persistence operations for orders and counters.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateLineItems(ctx context.Context, items []models.OrderLineItem) error
	FindByPublicID(ctx context.Context, sessionID uuid.UUID, publicID string) (*models.Order, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, params pagination.Params) (*OrderList, error)
	FindLineItem(ctx context.Context, orderID uuid.UUID, position int) (*models.OrderLineItem, error)
	UpdateLineItem(ctx context.Context, itemID uuid.UUID, updates map[string]any) error
	UpdateOrder(ctx context.Context, orderID uuid.UUID, updates map[string]any) error
	AllocateCounter(ctx context.Context, name string, n int64) (int64, error)
}
