// Package server owns the process lifecycle of the API: it starts the HTTP
// transport and the optional gRPC health transport, waits for SIGINT,
// SIGTERM or SIGQUIT, and drains both before returning.
package server
