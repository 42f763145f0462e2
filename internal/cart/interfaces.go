package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
)

// Repository defines persistence operations for session carts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindBySession(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error)
	FindBySessionAndProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	Update(ctx context.Context, itemID uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, sessionID uuid.UUID, productID string) (int64, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) error
}
