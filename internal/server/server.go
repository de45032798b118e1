// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/handler"
	myGRPC "github.com/MKhiriev/it-works-on-my-machine/internal/handler/grpc"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
)

type server struct {
	httpServer *httpServer
	// gRPCServer is nil when no gRPC address is configured.
	gRPCServer *grpcServer

	state   atomic.Int32
	started atomic.Bool
	addr    atomic.Value // net.Addr

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	var grpcHandler *myGRPC.Handler
	if cfg.GRPCAddress != "" {
		grpcHandler = handlers.GRPC
	}

	return newServer(handlers.HTTP.Init(), grpcHandler, cfg, logger), nil
}

func newServer(httpHandler http.Handler, grpcHandler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *server {
	s := &server{
		httpServer: newHTTPServer(httpHandler, cfg, logger),
		logger:     logger,
	}
	if grpcHandler != nil {
		s.gRPCServer = newGRPCServer(grpcHandler, cfg.GRPCAddress, logger)
	}

	return s
}

func (s *server) State() State {
	return State(s.state.Load())
}

func (s *server) Addr() net.Addr {
	addr, _ := s.addr.Load().(net.Addr)
	return addr
}

func (s *server) setState(state State) {
	s.state.Store(int32(state))
	s.logger.Debug().Stringer("state", state).Msg("server state changed")
}

func (s *server) RunServer(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errAlreadyStarted
	}

	if err := s.listen(); err != nil {
		return err
	}

	// registered before LISTENING so that a signal sent to a listening
	// server is never lost
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 2)
	go func() {
		errCh <- s.httpServer.serve()
	}()
	if s.gRPCServer != nil {
		go func() {
			errCh <- s.gRPCServer.serve()
		}()
	}

	s.setState(StateListening)
	s.logEndpoints()

	var serveErr error
	select {
	case sig := <-sigCh:
		s.logger.Info().Stringer("signal", sig).Msg("received signal, shutting down gracefully")
	case <-ctx.Done():
		s.logger.Info().Msg("context cancelled, shutting down gracefully")
	case serveErr = <-errCh:
		s.logger.Err(serveErr).Msg("server stopped serving, shutting down")
	}

	s.setState(StateDraining)
	s.shutdown()
	s.setState(StateStopped)
	s.logger.Info().Msg("server closed")

	return serveErr
}

// listen binds every configured transport. On failure the listeners bound so
// far are released and the state stays StateStarting.
func (s *server) listen() error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}
	s.addr.Store(s.httpServer.listener.Addr())

	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			s.httpServer.close()
			return err
		}
	}

	return nil
}

func (s *server) shutdown() {
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}
	s.httpServer.shutdown()
}

// logEndpoints logs the diagnostic URLs on the bound port.
func (s *server) logEndpoints() {
	host := s.httpServer.address
	if _, port, err := net.SplitHostPort(s.Addr().String()); err == nil {
		host = net.JoinHostPort("localhost", port)
	}
	baseURL := "http://" + host

	event := s.logger.Info().
		Str("address", s.Addr().String()).
		Str("root", baseURL+"/").
		Str("health", baseURL+"/health").
		Str("ready", baseURL+"/ready").
		Str("metrics", baseURL+"/metrics").
		Str("version", baseURL+"/version")
	if s.gRPCServer != nil {
		event = event.Str("grpc", s.gRPCServer.listener.Addr().String())
	}
	event.Msg("server is listening")
}
