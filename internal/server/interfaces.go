// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer binds, serves and blocks until the server is stopped. A
	// bind failure is returned while the state is still StateStarting. A
	// stop request yields nil once every listener is closed.
	RunServer(ctx context.Context) error

	// State returns the current lifecycle state. Safe for concurrent use.
	State() State

	// Addr returns the bound HTTP address, or nil before binding.
	Addr() net.Addr
}
