package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	internalcart "github.com/anandmehra/dailybasket-backend/internal/cart"
	"github.com/anandmehra/dailybasket-backend/internal/catalog"
	internalorders "github.com/anandmehra/dailybasket-backend/internal/orders"
	"github.com/anandmehra/dailybasket-backend/internal/payments"
	"github.com/anandmehra/dailybasket-backend/pkg/config"
	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
	"github.com/anandmehra/dailybasket-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCartService struct {
	items []models.CartItem
}

func (s *stubCartService) Items(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error) {
	return s.items, nil
}

func (s *stubCartService) Upsert(ctx context.Context, input internalcart.UpsertInput) (*models.CartItem, error) {
	panic("unimplemented")
}

func (s *stubCartService) Remove(ctx context.Context, sessionID uuid.UUID, productID string) error {
	panic("unimplemented")
}

func (s *stubCartService) Preview(ctx context.Context, sessionID uuid.UUID, now time.Time) (*internalcart.Preview, error) {
	panic("unimplemented")
}

type stubOrdersService struct {
	finalize func(ctx context.Context, input internalorders.FinalizeInput) (*models.Order, error)
	get      func(ctx context.Context, sessionID uuid.UUID, publicID string) (*models.Order, error)
}

func (s *stubOrdersService) Finalize(ctx context.Context, input internalorders.FinalizeInput) (*models.Order, error) {
	if s.finalize != nil {
		return s.finalize(ctx, input)
	}
	panic("unimplemented")
}

func (s *stubOrdersService) List(ctx context.Context, sessionID uuid.UUID, params pagination.Params) (*internalorders.OrderList, error) {
	return &internalorders.OrderList{}, nil
}

func (s *stubOrdersService) Get(ctx context.Context, sessionID uuid.UUID, publicID string) (*models.Order, error) {
	if s.get != nil {
		return s.get(ctx, sessionID, publicID)
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrdersService) CancelItem(ctx context.Context, ref internalorders.ItemRef) error {
	panic("unimplemented")
}

func (s *stubOrdersService) MarkItemDelivered(ctx context.Context, ref internalorders.ItemRef) error {
	panic("unimplemented")
}

func (s *stubOrdersService) InitiateReturn(ctx context.Context, input internalorders.ReturnInput) error {
	panic("unimplemented")
}

func (s *stubOrdersService) RecordPayment(ctx context.Context, sessionID uuid.UUID, publicID string, now time.Time) (*models.Order, error) {
	panic("unimplemented")
}

type stubPaymentsService struct{}

func (stubPaymentsService) Pay(ctx context.Context, input payments.PayInput) (*models.Order, error) {
	panic("unimplemented")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
	}
}

func newTestRouter(ordersSvc internalorders.Service) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		testConfig(),
		logg,
		stubPinger{},
		nil, // redis
		nil, // metrics gatherer
		catalog.NewService(),
		&stubCartService{},
		ordersSvc,
		stubPaymentsService{},
	)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(&stubOrdersService{})

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestCatalogIsPublic(t *testing.T) {
	router := newTestRouter(&stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var payload struct {
		Data struct {
			Products []catalog.Product `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("parse catalog response: %v", err)
	}
	if len(payload.Data.Products) != 35 {
		t.Fatalf("expected 35 products got %d", len(payload.Data.Products))
	}
}

func TestCatalogRejectsUnknownCategory(t *testing.T) {
	router := newTestRouter(&stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?category=frozen", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(&stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header got %d", resp.Code)
	}

	bad := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	bad.Header.Set("X-Session-Id", "not-a-uuid")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, bad)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed session got %d", resp.Code)
	}

	good := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	good.Header.Set("X-Session-Id", uuid.NewString())
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, good)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session got %d", resp.Code)
	}
}

func TestCheckoutReturnsCreatedOrder(t *testing.T) {
	sessionID := uuid.New()
	ordersSvc := &stubOrdersService{
		finalize: func(ctx context.Context, input internalorders.FinalizeInput) (*models.Order, error) {
			if input.SessionID != sessionID {
				t.Fatalf("expected session %s got %s", sessionID, input.SessionID)
			}
			return &models.Order{
				PublicID:       "ORD-001",
				SessionID:      input.SessionID,
				DeliverySlotID: input.DeliverySlotID,
				Status:         enums.OrderStatusPending,
				PaymentDueDate: input.Now.AddDate(0, 0, 30),
			}, nil
		},
	}
	router := newTestRouter(ordersSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"delivery_slot_id":"morning"}`))
	req.Header.Set("X-Session-Id", sessionID.String())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Data internalorders.OrderView `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("parse checkout response: %v", err)
	}
	if payload.Data.ID != "ORD-001" {
		t.Fatalf("expected ORD-001 got %s", payload.Data.ID)
	}
}

func TestOrderDetailNotFound(t *testing.T) {
	router := newTestRouter(&stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-999", nil)
	req.Header.Set("X-Session-Id", uuid.NewString())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCheckoutRejectsMissingSlot(t *testing.T) {
	router := newTestRouter(&stubOrdersService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
	req.Header.Set("X-Session-Id", uuid.NewString())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
