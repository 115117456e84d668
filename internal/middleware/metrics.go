package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/castanedalj/tienda-backend/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		status := strconv.Itoa(rec.status)
		metrics.RequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		metrics.RequestLatency.WithLabelValues(r.Method, route, status).
			Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if patt := rc.RoutePattern(); patt != "" {
			return patt
		}
	}
	return r.URL.Path
}
