package controllers

import (
	"net/http"
	"time"

	"github.com/anandmehra/dailybasket-backend/api/middleware"
	"github.com/anandmehra/dailybasket-backend/api/responses"
	"github.com/anandmehra/dailybasket-backend/api/validators"
	internalorders "github.com/anandmehra/dailybasket-backend/internal/orders"
	"github.com/anandmehra/dailybasket-backend/internal/payments"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
)

type payOrderRequest struct {
	UPIID string `json:"upi_id" validate:"required"`
}

// PayOrder submits a UPI payment for an order.
func PayOrder(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable"))
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload payOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := time.Now()
		paid, err := svc.Pay(r.Context(), payments.PayInput{
			SessionID: middleware.SessionIDFromContext(r.Context()),
			OrderID:   orderID,
			UPIID:     payload.UPIID,
			Now:       now,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalorders.BuildOrderView(paid, now))
	}
}
