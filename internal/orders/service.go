package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anandmehra/dailybasket-backend/internal/billing"
	"github.com/anandmehra/dailybasket-backend/internal/cart"
	"github.com/anandmehra/dailybasket-backend/internal/catalog"
	"github.com/anandmehra/dailybasket-backend/internal/scheduling"
	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/metrics"
	"github.com/anandmehra/dailybasket-backend/pkg/outbox"
	"github.com/anandmehra/dailybasket-backend/pkg/pagination"
	"github.com/anandmehra/dailybasket-backend/pkg/types"
)

const paymentTermDays = 30

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type catalogLookup interface {
	ProductByID(id string) (catalog.Product, error)
	SlotByID(id string) (catalog.DeliverySlot, error)
}

// Service defines the order lifecycle operations.
type Service interface {
	Finalize(ctx context.Context, input FinalizeInput) (*models.Order, error)
	List(ctx context.Context, sessionID uuid.UUID, params pagination.Params) (*OrderList, error)
	Get(ctx context.Context, sessionID uuid.UUID, publicID string) (*models.Order, error)
	CancelItem(ctx context.Context, ref ItemRef) error
	MarkItemDelivered(ctx context.Context, ref ItemRef) error
	InitiateReturn(ctx context.Context, input ReturnInput) error
	RecordPayment(ctx context.Context, sessionID uuid.UUID, publicID string, now time.Time) (*models.Order, error)
}

// FinalizeInput captures a checkout request.
type FinalizeInput struct {
	SessionID      uuid.UUID
	DeliverySlotID string
	Now            time.Time
}

// ItemRef addresses one line item by its order and checkout position.
type ItemRef struct {
	SessionID uuid.UUID
	OrderID   string
	ItemIndex int
}

// ReturnInput captures a return request for a delivered item.
type ReturnInput struct {
	ItemRef
	Reason string
}

type service struct {
	repo    Repository
	carts   cart.Repository
	tx      txRunner
	outbox  outboxPublisher
	catalog catalogLookup
	metrics *metrics.OrderMetrics
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, carts cart.Repository, tx txRunner, ob outboxPublisher, cat catalogLookup, m *metrics.OrderMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{
		repo:    repo,
		carts:   carts,
		tx:      tx,
		outbox:  ob,
		catalog: cat,
		metrics: m,
	}, nil
}

func (s *service) Finalize(ctx context.Context, input FinalizeInput) (*models.Order, error) {
	if input.SessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	slot, err := s.catalog.SlotByID(input.DeliverySlotID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery slot is invalid")
	}
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	var created *models.Order
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		carts := s.carts.WithTx(tx)

		cartItems, err := carts.FindBySession(ctx, input.SessionID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		if len(cartItems) == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot checkout an empty cart")
		}

		orderNumber, err := repo.AllocateCounter(ctx, models.CounterOrderNumber, 1)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "allocate order number")
		}
		firstSerial, err := repo.AllocateCounter(ctx, models.CounterSerialNumber, int64(len(cartItems)))
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "allocate serial numbers")
		}

		lines := make([]billing.Line, 0, len(cartItems))
		items := make([]models.OrderLineItem, 0, len(cartItems))
		for i, ci := range cartItems {
			product, err := s.catalog.ProductByID(ci.ProductID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeStateConflict, err, "cart references unknown product")
			}
			line := billing.Line{Frequency: ci.Frequency, Quantity: ci.Quantity, UnitPrice: ci.UnitPrice}
			lines = append(lines, line)

			items = append(items, models.OrderLineItem{
				Position:      i,
				ProductID:     ci.ProductID,
				ProductName:   product.Name,
				Unit:          product.Unit,
				Frequency:     ci.Frequency,
				Quantity:      ci.Quantity,
				UnitPrice:     ci.UnitPrice,
				MonthlyCharge: billing.MonthlyCharge(line, now),
				SerialNumber:  formatSerial(firstSerial + int64(i)),
				Status:        enums.LineItemStatusPending,
				DeliveryDates: types.FromTimes(scheduling.DeliveryDates(ci.Frequency, now)),
			})
		}
		totals := billing.OrderTotals(lines, now)

		order := &models.Order{
			PublicID:       formatPublicID(orderNumber),
			SessionID:      input.SessionID,
			DeliverySlotID: slot.ID,
			Status:         enums.OrderStatusPending,
			OneTimeTotal:   totals.BaseTotal,
			MonthlyCharge:  totals.MonthlyCharge,
			PaymentDueDate: now.AddDate(0, 0, paymentTermDays),
		}
		order, err = repo.CreateOrder(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := repo.CreateLineItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create line items")
		}
		if err := carts.DeleteBySession(ctx, input.SessionID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		order.Items = items
		created = order

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventOrderFinalized,
			AggregateType: enums.AggregateOrder,
			AggregateID:   order.ID,
			Session:       &outbox.SessionRef{SessionID: input.SessionID},
			Data: OrderFinalizedEvent{
				OrderID:        order.ID,
				PublicID:       order.PublicID,
				SessionID:      input.SessionID,
				DeliverySlotID: order.DeliverySlotID,
				OneTimeTotal:   order.OneTimeTotal,
				MonthlyCharge:  order.MonthlyCharge,
				ItemCount:      len(items),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncFinalized()
	return created, nil
}

func (s *service) List(ctx context.Context, sessionID uuid.UUID, params pagination.Params) (*OrderList, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	list, err := s.repo.ListBySession(ctx, sessionID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

func (s *service) Get(ctx context.Context, sessionID uuid.UUID, publicID string) (*models.Order, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	order, err := s.repo.FindByPublicID(ctx, sessionID, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) CancelItem(ctx context.Context, ref ItemRef) error {
	err := s.transitionItem(ctx, ref, enums.LineItemStatusPending, enums.LineItemStatusCancelled,
		"only pending items can be cancelled",
		func(item *models.OrderLineItem, now time.Time) map[string]any {
			return map[string]any{
				"status":       enums.LineItemStatusCancelled,
				"cancelled_at": now,
			}
		},
		func(order *models.Order, item *models.OrderLineItem) outbox.DomainEvent {
			return outbox.DomainEvent{
				EventType:     enums.EventOrderItemCancelled,
				AggregateType: enums.AggregateOrder,
				AggregateID:   order.ID,
				Session:       &outbox.SessionRef{SessionID: order.SessionID},
				Data: ItemCancelledEvent{
					OrderID:      order.ID,
					PublicID:     order.PublicID,
					Position:     item.Position,
					SerialNumber: item.SerialNumber,
				},
			}
		})
	if err != nil {
		return err
	}
	s.metrics.IncItemCancelled()
	return nil
}

func (s *service) MarkItemDelivered(ctx context.Context, ref ItemRef) error {
	return s.transitionItem(ctx, ref, enums.LineItemStatusPending, enums.LineItemStatusDelivered,
		"only pending items can be delivered",
		func(item *models.OrderLineItem, now time.Time) map[string]any {
			return map[string]any{
				"status": enums.LineItemStatusDelivered,
			}
		},
		nil)
}

func (s *service) InitiateReturn(ctx context.Context, input ReturnInput) error {
	reason, err := enums.ParseReturnReason(input.Reason)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "return reason must be rotten, expired, damaged, wrong_item or quality_issue")
	}

	err = s.transitionItem(ctx, input.ItemRef, enums.LineItemStatusDelivered, enums.LineItemStatusReturned,
		"only delivered items can be returned",
		func(item *models.OrderLineItem, now time.Time) map[string]any {
			return map[string]any{
				"status":        enums.LineItemStatusReturned,
				"return_reason": reason,
				"returned_at":   now,
			}
		},
		func(order *models.Order, item *models.OrderLineItem) outbox.DomainEvent {
			return outbox.DomainEvent{
				EventType:     enums.EventOrderItemReturned,
				AggregateType: enums.AggregateOrder,
				AggregateID:   order.ID,
				Session:       &outbox.SessionRef{SessionID: order.SessionID},
				Data: ItemReturnedEvent{
					OrderID:      order.ID,
					PublicID:     order.PublicID,
					Position:     item.Position,
					SerialNumber: item.SerialNumber,
					Reason:       reason,
				},
			}
		})
	if err != nil {
		return err
	}
	s.metrics.IncItemReturned(string(reason))
	return nil
}

func (s *service) RecordPayment(ctx context.Context, sessionID uuid.UUID, publicID string, now time.Time) (*models.Order, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if now.IsZero() {
		now = time.Now()
	}

	var paid *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := repo.FindByPublicID(ctx, sessionID, publicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		// Paying twice is a no-op, not an error.
		if order.Status == enums.OrderStatusPaid {
			paid = order
			return nil
		}

		if err := repo.UpdateOrder(ctx, order.ID, map[string]any{
			"status":  enums.OrderStatusPaid,
			"paid_at": now,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark order paid")
		}
		order.Status = enums.OrderStatusPaid
		order.PaidAt = &now
		paid = order

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventOrderPaid,
			AggregateType: enums.AggregateOrder,
			AggregateID:   order.ID,
			Session:       &outbox.SessionRef{SessionID: sessionID},
			Data: OrderPaidEvent{
				OrderID:  order.ID,
				PublicID: order.PublicID,
				PaidAt:   now,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

type itemUpdatesFn func(item *models.OrderLineItem, now time.Time) map[string]any
type itemEventFn func(order *models.Order, item *models.OrderLineItem) outbox.DomainEvent

func (s *service) transitionItem(ctx context.Context, ref ItemRef, from, to enums.LineItemStatus, guardMsg string, updates itemUpdatesFn, event itemEventFn) error {
	if ref.SessionID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if ref.ItemIndex < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "item index must not be negative")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindByPublicID(ctx, ref.SessionID, ref.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		item, err := repo.FindLineItem(ctx, order.ID, ref.ItemIndex)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order item")
		}
		if item.Status != from {
			return pkgerrors.New(pkgerrors.CodeStateConflict, guardMsg)
		}

		now := time.Now()
		if err := repo.UpdateLineItem(ctx, item.ID, updates(item, now)); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order item")
		}
		item.Status = to

		if event == nil {
			return nil
		}
		return s.outbox.Emit(ctx, tx, event(order, item))
	})
}

// formatSerial pads to three digits and widens naturally past 999.
func formatSerial(n int64) string {
	return fmt.Sprintf("%03d", n)
}

func formatPublicID(n int64) string {
	return fmt.Sprintf("ORD-%03d", n)
}
