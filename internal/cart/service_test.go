package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/anandmehra/dailybasket-backend/internal/catalog"
	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
)

type stubCartRepo struct {
	items map[string]*models.CartItem // productID -> item
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{items: map[string]*models.CartItem{}}
}

func (s *stubCartRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubCartRepo) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, item := range s.items {
		if item.SessionID == sessionID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *stubCartRepo) FindBySessionAndProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*models.CartItem, error) {
	item, ok := s.items[productID]
	if !ok || item.SessionID != sessionID {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (s *stubCartRepo) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.items[item.ProductID] = item
	return item, nil
}

func (s *stubCartRepo) Update(ctx context.Context, itemID uuid.UUID, updates map[string]any) error {
	for _, item := range s.items {
		if item.ID != itemID {
			continue
		}
		if v, ok := updates["frequency"].(enums.Frequency); ok {
			item.Frequency = v
		}
		if v, ok := updates["quantity"].(decimal.Decimal); ok {
			item.Quantity = v
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (s *stubCartRepo) Delete(ctx context.Context, sessionID uuid.UUID, productID string) (int64, error) {
	item, ok := s.items[productID]
	if !ok || item.SessionID != sessionID {
		return 0, nil
	}
	delete(s.items, productID)
	return 1, nil
}

func (s *stubCartRepo) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	for id, item := range s.items {
		if item.SessionID == sessionID {
			delete(s.items, id)
		}
	}
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{}, catalog.NewService())
	if err != nil {
		t.Fatalf("service constructor failed: %v", err)
	}
	return svc
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestUpsertAddsNewItemWithPriceSnapshot(t *testing.T) {
	repo := newStubCartRepo()
	svc := newTestService(t, repo)
	sessionID := uuid.New()

	item, err := svc.Upsert(context.Background(), UpsertInput{
		SessionID: sessionID,
		ProductID: "tomato",
		Frequency: "weekly",
		Quantity:  dec("2"),
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if item.Frequency != enums.FrequencyWeekly {
		t.Fatalf("expected weekly, got %s", item.Frequency)
	}
	if !item.UnitPrice.Equal(dec("18")) {
		t.Fatalf("expected price snapshot 18, got %s", item.UnitPrice)
	}
}

func TestUpsertReplacesExistingSubscription(t *testing.T) {
	repo := newStubCartRepo()
	svc := newTestService(t, repo)
	sessionID := uuid.New()

	_, err := svc.Upsert(context.Background(), UpsertInput{
		SessionID: sessionID, ProductID: "milk", Frequency: "daily", Quantity: dec("1"),
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	_, err = svc.Upsert(context.Background(), UpsertInput{
		SessionID: sessionID, ProductID: "milk", Frequency: "weekly", Quantity: dec("2.5"),
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	items, err := svc.Items(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Frequency != enums.FrequencyWeekly || !items[0].Quantity.Equal(dec("2.5")) {
		t.Fatalf("expected replaced subscription, got %s qty %s", items[0].Frequency, items[0].Quantity)
	}
}

func TestUpsertValidation(t *testing.T) {
	repo := newStubCartRepo()
	svc := newTestService(t, repo)
	sessionID := uuid.New()

	cases := []struct {
		name  string
		input UpsertInput
		code  pkgerrors.Code
	}{
		{
			name:  "unknown product",
			input: UpsertInput{SessionID: sessionID, ProductID: "unicorn", Frequency: "daily", Quantity: dec("1")},
			code:  pkgerrors.CodeNotFound,
		},
		{
			name:  "bad frequency",
			input: UpsertInput{SessionID: sessionID, ProductID: "onion", Frequency: "hourly", Quantity: dec("1")},
			code:  pkgerrors.CodeValidation,
		},
		{
			name:  "quantity too small",
			input: UpsertInput{SessionID: sessionID, ProductID: "onion", Frequency: "daily", Quantity: dec("0.25")},
			code:  pkgerrors.CodeValidation,
		},
		{
			name:  "quantity too large",
			input: UpsertInput{SessionID: sessionID, ProductID: "onion", Frequency: "daily", Quantity: dec("99.5")},
			code:  pkgerrors.CodeValidation,
		},
		{
			name:  "quantity off step",
			input: UpsertInput{SessionID: sessionID, ProductID: "onion", Frequency: "daily", Quantity: dec("1.3")},
			code:  pkgerrors.CodeValidation,
		},
		{
			name:  "missing session",
			input: UpsertInput{ProductID: "onion", Frequency: "daily", Quantity: dec("1")},
			code:  pkgerrors.CodeValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), tc.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !pkgerrors.IsCode(err, tc.code) {
				t.Fatalf("expected code %s, got %v", tc.code, err)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	repo := newStubCartRepo()
	svc := newTestService(t, repo)
	sessionID := uuid.New()

	_, err := svc.Upsert(context.Background(), UpsertInput{
		SessionID: sessionID, ProductID: "rice", Frequency: "monthly", Quantity: dec("5"),
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := svc.Remove(context.Background(), sessionID, "rice"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	err = svc.Remove(context.Background(), sessionID, "rice")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPreviewComputesChargesAndCalendar(t *testing.T) {
	repo := newStubCartRepo()
	svc := newTestService(t, repo)
	sessionID := uuid.New()
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Upsert(context.Background(), UpsertInput{
		SessionID: sessionID, ProductID: "tomato", Frequency: "weekly", Quantity: dec("2"),
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	preview, err := svc.Preview(context.Background(), sessionID, now)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if len(preview.Items) != 1 {
		t.Fatalf("expected 1 preview item, got %d", len(preview.Items))
	}
	item := preview.Items[0]
	if !item.MonthlyCharge.Equal(dec("144")) {
		t.Fatalf("expected monthly charge 144, got %s", item.MonthlyCharge)
	}
	if len(item.DeliveryDates) != 4 {
		t.Fatalf("expected 4 delivery dates, got %d", len(item.DeliveryDates))
	}
	if item.DeliveryDates[0] != "2025-03-01" {
		t.Fatalf("expected first delivery 2025-03-01, got %s", item.DeliveryDates[0])
	}
	if !preview.OneTimeTotal.Equal(dec("36")) {
		t.Fatalf("expected one-time total 36, got %s", preview.OneTimeTotal)
	}
	if !preview.MonthlyCharge.Equal(dec("144")) {
		t.Fatalf("expected monthly charge 144, got %s", preview.MonthlyCharge)
	}
}
