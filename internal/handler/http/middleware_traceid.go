package http

import (
	"net/http"

	"github.com/MKhiriev/habit-tracker/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID stores a logger tagged with the request trace id in the
// request context and echoes the id back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := logger.TraceID(r.Header.Get(traceIDHeader))

		l := h.logger.WithTraceID(traceID)
		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
