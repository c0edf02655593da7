package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/handler"
	"github.com/MKhiriev/habit-tracker/internal/logger"
)

// shutdownTimeout bounds graceful shutdown of in-flight HTTP requests.
const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating HTTP server: %w", err)
		}
		servers.transports = append(servers.transports, httpSrv)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.Shutdown()
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		servers.transports = append(servers.transports, grpcSrv)
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

// Shutdown stops the transports in reverse start order.
func (s *server) Shutdown() {
	for i := len(s.transports) - 1; i >= 0; i-- {
		t := s.transports[i]
		s.logger.Info().Str("transport", t.Name()).Msg("stopping")
		t.Shutdown()
	}
}

func (s *server) run(ctx context.Context) {
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.Name()).Msg("launching")
		go t.RunServer()
	}

	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}
