package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/anandmehra/dailybasket-backend/api/responses"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session requires a UUID session header on every storefront route. Carts and
// orders are scoped to this identifier.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Session-Id header required"))
				return
			}
			sessionID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Session-Id must be a valid UUID"))
				return
			}

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{"session_id": sessionID.String()})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
