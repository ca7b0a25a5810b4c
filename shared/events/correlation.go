package events

import (
	"context"
	"net/http"

	"github.com/flowcart/order-system/shared/models"
)

// CorrelationIDHeader is the HTTP header carrying the correlation id
const CorrelationIDHeader = "X-Correlation-Id"

type correlationIDKey struct{}

// ContextWithCorrelationID stores a correlation id in the context
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFromContext returns the correlation id from the context,
// generating a fresh one when the context carries none
func CorrelationIDFromContext(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok && correlationID != "" {
		return correlationID
	}
	return models.GenerateUUID().String()
}

// CorrelationMiddleware reads the correlation id header into the request
// context, generating one for requests that arrive without it
func CorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = models.GenerateUUID().String()
		}

		w.Header().Set(CorrelationIDHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(ContextWithCorrelationID(r.Context(), correlationID)))
	})
}
