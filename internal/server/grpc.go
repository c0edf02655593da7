package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/habit-tracker/internal/config"
	myGRPC "github.com/MKhiriev/habit-tracker/internal/handler/grpc"
	"github.com/MKhiriev/habit-tracker/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// healthCtx lives until Shutdown and bounds the health watcher.
	healthCtx  context.Context
	stopHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errListen, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	healthCtx, stopHealth := context.WithCancel(context.Background())

	return &grpcServer{
		healthCtx:       healthCtx,
		stopHealth:      stopHealth,
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Name() string {
	return "grpc"
}

func (g *grpcServer) RunServer() {
	go g.handler.WatchHealth(g.healthCtx, myGRPC.DefaultHealthInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopHealth()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
