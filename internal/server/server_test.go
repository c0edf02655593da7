package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/handler"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func newHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:bad"}

	srv, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())

	require.ErrorIs(t, err, errListen)
	assert.Nil(t, srv)
}

func TestNewServer_HTTPAddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { occupied.Close() })

	cfg := config.Server{HTTPAddress: occupied.Addr().String()}

	srv, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())

	require.ErrorIs(t, err, errListen)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCErrorReleasesHTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), GRPCAddress: "256.0.0.1:bad"}

	_, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())
	require.ErrorIs(t, err, errListen)

	l, err := net.Listen("tcp", cfg.HTTPAddress)
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

type fakeTransport struct {
	name   string
	events *[]string
}

func (f fakeTransport) Name() string { return f.name }
func (f fakeTransport) RunServer()   {}
func (f fakeTransport) Shutdown()    { *f.events = append(*f.events, f.name) }

func TestServer_ShutdownReverseOrder(t *testing.T) {
	var events []string
	srv := &server{
		transports: []transport{
			fakeTransport{name: "http", events: &events},
			fakeTransport{name: "grpc", events: &events},
		},
		logger: logger.Nop(),
	}

	srv.Shutdown()

	assert.Equal(t, []string{"grpc", "http"}, events)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), GRPCAddress: freeAddress(t)}

	srv, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
