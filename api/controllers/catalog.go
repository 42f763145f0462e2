package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/anandmehra/dailybasket-backend/api/responses"
	"github.com/anandmehra/dailybasket-backend/internal/catalog"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
)

// ListCatalog returns the product assortment, optionally filtered by category
// and a free-text search.
func ListCatalog(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category != "" {
			if _, err := enums.ParseProductCategory(category); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid category %q", category)))
				return
			}
		}

		products := svc.Products(catalog.ListFilter{
			Category: category,
			Search:   r.URL.Query().Get("search"),
		})

		responses.WriteSuccess(w, map[string]any{
			"products":   products,
			"categories": enums.ProductCategories(),
		})
	}
}

// ListDeliverySlots returns the delivery windows offered at checkout.
func ListDeliverySlots(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"slots": svc.Slots()})
	}
}
