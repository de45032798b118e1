// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/it-works-on-my-machine/internal/handler/grpc"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	address  string
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: address,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening gRPC on %s: %w", g.address, err)
	}
	g.listener = listener
	return nil
}

// serve marks the health service SERVING and blocks until the server stops.
func (g *grpcServer) serve() error {
	g.handler.SetServing()
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING first, then waits for pending RPCs.
func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}

func (g *grpcServer) close() {
	if g.listener != nil {
		_ = g.listener.Close()
	}
}
