package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/api/middleware"
	"github.com/anandmehra/dailybasket-backend/api/responses"
	"github.com/anandmehra/dailybasket-backend/api/validators"
	internalcart "github.com/anandmehra/dailybasket-backend/internal/cart"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
)

// GetCart returns the session's cart lines.
func GetCart(svc internalcart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		items, err := svc.Items(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

type upsertCartItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Frequency string          `json:"frequency" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// UpsertCartItem adds a product subscription to the cart or replaces its
// frequency and quantity when the product is already present.
func UpsertCartItem(svc internalcart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload upsertCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Upsert(r.Context(), internalcart.UpsertInput{
			SessionID: middleware.SessionIDFromContext(r.Context()),
			ProductID: strings.TrimSpace(payload.ProductID),
			Frequency: payload.Frequency,
			Quantity:  payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// RemoveCartItem deletes one product from the cart.
func RemoveCartItem(svc internalcart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if err := svc.Remove(r.Context(), middleware.SessionIDFromContext(r.Context()), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}

// PreviewCart returns the computed delivery calendar and billing summary for
// the current cart.
func PreviewCart(svc internalcart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		preview, err := svc.Preview(r.Context(), middleware.SessionIDFromContext(r.Context()), time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, preview)
	}
}
