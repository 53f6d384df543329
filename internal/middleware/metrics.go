package middleware

import (
	"net/http"
	"strconv"

	"github.com/Haavardeide1/Kystobservatorene/internal/metrics"
)

// MetricsMiddleware counts requests by method and response status
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		metrics.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
	})
}
