package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anandmehra/dailybasket-backend/api/middleware"
	"github.com/anandmehra/dailybasket-backend/api/responses"
	"github.com/anandmehra/dailybasket-backend/api/validators"
	internalorders "github.com/anandmehra/dailybasket-backend/internal/orders"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
	"github.com/anandmehra/dailybasket-backend/pkg/pagination"
)

// ListOrders returns the session's order history, newest first.
func ListOrders(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cursor := strings.TrimSpace(r.URL.Query().Get("cursor"))

		list, err := svc.List(r.Context(), middleware.SessionIDFromContext(r.Context()), pagination.Params{
			Limit:  limit,
			Cursor: cursor,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := time.Now()
		view := internalorders.OrderListView{
			Orders:     make([]internalorders.OrderView, 0, len(list.Orders)),
			NextCursor: list.NextCursor,
		}
		for i := range list.Orders {
			view.Orders = append(view.Orders, internalorders.BuildOrderView(&list.Orders[i], now))
		}
		responses.WriteSuccess(w, view)
	}
}

// OrderDetail returns one order with its line items.
func OrderDetail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalorders.BuildOrderView(order, time.Now()))
	}
}

// CancelOrderItem cancels one pending line item.
func CancelOrderItem(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		ref, err := parseItemRef(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.CancelItem(r.Context(), ref); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}

// DeliverOrderItem marks one pending line item as delivered.
func DeliverOrderItem(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		ref, err := parseItemRef(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.MarkItemDelivered(r.Context(), ref); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}

type returnOrderItemRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ReturnOrderItem starts a return for one delivered line item.
func ReturnOrderItem(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		ref, err := parseItemRef(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload returnOrderItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.InitiateReturn(r.Context(), internalorders.ReturnInput{
			ItemRef: ref,
			Reason:  payload.Reason,
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}

func parseOrderID(r *http.Request) (string, error) {
	orderID := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if orderID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	return orderID, nil
}

func parseItemRef(r *http.Request) (internalorders.ItemRef, error) {
	orderID, err := parseOrderID(r)
	if err != nil {
		return internalorders.ItemRef{}, err
	}
	rawIndex := strings.TrimSpace(chi.URLParam(r, "itemIndex"))
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		return internalorders.ItemRef{}, pkgerrors.New(pkgerrors.CodeValidation, "item index must be a non-negative integer")
	}
	return internalorders.ItemRef{
		SessionID: middleware.SessionIDFromContext(r.Context()),
		OrderID:   orderID,
		ItemIndex: index,
	}, nil
}
