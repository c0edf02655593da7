package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key carrying the trace id, matching the
// X-Trace-ID header of the HTTP transport.
const traceIDKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a request-scoped logger carrying
// "trace_id" to the context and logs every call with its status code.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	l := h.logger.WithTraceID(traceIDFromMetadata(ctx))
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func traceIDFromMetadata(ctx context.Context) string {
	var incoming string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			incoming = values[0]
		}
	}
	return logger.TraceID(incoming)
}
