package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/anandmehra/dailybasket-backend/internal/billing"
	"github.com/anandmehra/dailybasket-backend/internal/catalog"
	"github.com/anandmehra/dailybasket-backend/internal/scheduling"
	dbpkg "github.com/anandmehra/dailybasket-backend/pkg/db"
	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/types"
)

var (
	minQuantity  = decimal.RequireFromString("0.5")
	maxQuantity  = decimal.NewFromInt(99)
	quantityStep = decimal.RequireFromString("0.5")
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLookup interface {
	ProductByID(id string) (catalog.Product, error)
}

// Service defines the session cart operations.
type Service interface {
	Items(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error)
	Upsert(ctx context.Context, input UpsertInput) (*models.CartItem, error)
	Remove(ctx context.Context, sessionID uuid.UUID, productID string) error
	Preview(ctx context.Context, sessionID uuid.UUID, now time.Time) (*Preview, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	catalog productLookup
}

// UpsertInput captures an add-or-replace request for one product subscription.
type UpsertInput struct {
	SessionID uuid.UUID
	ProductID string
	Frequency string
	Quantity  decimal.Decimal
}

// NewService builds a cart service with the required dependencies.
func NewService(repo Repository, tx txRunner, cat productLookup) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{repo: repo, tx: tx, catalog: cat}, nil
}

func (s *service) Items(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	items, err := s.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart items")
	}
	return items, nil
}

func (s *service) Upsert(ctx context.Context, input UpsertInput) (*models.CartItem, error) {
	if input.SessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	freq, err := enums.ParseFrequency(input.Frequency)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "frequency must be oneTime, daily, weekly or monthly")
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	product, err := s.catalog.ProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}

	var saved *models.CartItem
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindBySessionAndProduct(ctx, input.SessionID, product.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
		}

		if existing != nil {
			updates := map[string]any{
				"frequency": freq,
				"quantity":  input.Quantity,
			}
			if err := repo.Update(ctx, existing.ID, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
			}
			existing.Frequency = freq
			existing.Quantity = input.Quantity
			saved = existing
			return nil
		}

		item := &models.CartItem{
			SessionID: input.SessionID,
			ProductID: product.ID,
			Frequency: freq,
			Quantity:  input.Quantity,
			UnitPrice: product.MRP,
		}
		created, err := repo.Create(ctx, item)
		if err != nil {
			if dbpkg.IsUniqueViolation(err, "uq_cart_items_session_product") {
				return pkgerrors.New(pkgerrors.CodeConflict, "cart item was added concurrently")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart item")
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *service) Remove(ctx context.Context, sessionID uuid.UUID, productID string) error {
	if sessionID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	affected, err := s.repo.Delete(ctx, sessionID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

func (s *service) Preview(ctx context.Context, sessionID uuid.UUID, now time.Time) (*Preview, error) {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	preview := &Preview{
		Items:         make([]PreviewItem, 0, len(items)),
		OneTimeTotal:  decimal.Zero,
		MonthlyCharge: decimal.Zero,
	}
	for _, item := range items {
		product, err := s.catalog.ProductByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		line := billing.Line{
			Frequency: item.Frequency,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		charge := billing.MonthlyCharge(line, now)
		dates := scheduling.DeliveryDates(item.Frequency, now)

		preview.Items = append(preview.Items, PreviewItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Unit:          product.Unit,
			Frequency:     item.Frequency,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			MonthlyCharge: charge,
			DeliveryDates: types.FromTimes(dates),
		})
		preview.OneTimeTotal = preview.OneTimeTotal.Add(billing.BaseAmount(line))
		preview.MonthlyCharge = preview.MonthlyCharge.Add(charge)
	}
	return preview, nil
}

func validateQuantity(qty decimal.Decimal) error {
	if qty.LessThan(minQuantity) || qty.GreaterThan(maxQuantity) {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be between 0.5 and 99")
	}
	if !qty.Mod(quantityStep).IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a multiple of 0.5")
	}
	return nil
}
