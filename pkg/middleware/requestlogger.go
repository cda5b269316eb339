package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/showrack/showrack/pkg/logger"
)

// RequestLogger builds a request-scoped logger enriched with
// correlation_id, user_id, trace_id, and span_id, and stores it in the
// context for retrieval with logger.FromContext.
//
// Mount after RequestLogging (correlation ID) and Auth (user ID).
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if id := UserIDFromContext(ctx); id != 0 {
				ctx = logger.WithUserID(ctx, strconv.FormatInt(id, 10))
			}

			enriched := logger.WithContext(ctx, base)
			ctx = logger.NewContext(ctx, enriched)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
