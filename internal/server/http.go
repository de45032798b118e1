// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
)

// readHeaderTimeout bounds how long a client may take to send headers. It
// does not limit in-flight requests during draining.
const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	address  string
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		address: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		logger:  logger,
	}
}

func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.address)
	if err != nil {
		return fmt.Errorf("error listening HTTP on %s: %w", h.address, err)
	}
	h.listener = listener
	return nil
}

// serve blocks until the server fails or is shut down. Shutdown is not a
// failure.
func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

// shutdown stops accepting and waits for in-flight requests with no
// deadline.
func (h *httpServer) shutdown() {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("error shutting down HTTP server")
	}
}

// close releases the listener when serving never started.
func (h *httpServer) close() {
	if h.listener != nil {
		_ = h.listener.Close()
	}
}
