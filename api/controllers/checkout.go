package controllers

import (
	"net/http"
	"time"

	"github.com/anandmehra/dailybasket-backend/api/middleware"
	"github.com/anandmehra/dailybasket-backend/api/responses"
	"github.com/anandmehra/dailybasket-backend/api/validators"
	internalorders "github.com/anandmehra/dailybasket-backend/internal/orders"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
)

type checkoutRequest struct {
	DeliverySlotID string `json:"delivery_slot_id" validate:"required"`
}

// Checkout finalizes the session's cart into an order.
func Checkout(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := time.Now()
		order, err := svc.Finalize(r.Context(), internalorders.FinalizeInput{
			SessionID:      middleware.SessionIDFromContext(r.Context()),
			DeliverySlotID: payload.DeliverySlotID,
			Now:            now,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, internalorders.BuildOrderView(order, now))
	}
}
