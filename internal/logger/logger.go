// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the server and the API client.
//
// Request-scoped loggers are stored in the context by the transport
// middleware (tagged with a trace id) and read back with FromContext or
// FromRequest. Passwords, hashes, tokens and the signing secret are never
// passed to a logger.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the log field that carries the request trace id.
const TraceIDField = "trace_id"

// maxTraceIDLength caps client-supplied trace ids.
const maxTraceIDLength = 128

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on os.Stdout tagged with role
// (e.g. "habit-tracker-server"). level is a zerolog level name; an empty or
// unknown value means debug. Every entry carries a timestamp and the calling
// function name in the "func" field.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

func newLogger(w io.Writer, role, level string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// TraceID returns incoming when it is usable as a trace id, otherwise a
// fresh UUID. Empty, oversized and non-printable values are replaced.
func TraceID(incoming string) string {
	if incoming == "" || len(incoming) > maxTraceIDLength {
		return uuid.NewString()
	}
	for _, r := range incoming {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return uuid.NewString()
		}
	}
	return incoming
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When none was stored the
// disabled zerolog logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
