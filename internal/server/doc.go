// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server owns the listeners and runs the transport servers through
// their lifecycle.
//
// A server binds its address explicitly, serves until SIGTERM, SIGINT or
// cancellation of the caller's context, then drains: it stops accepting,
// waits for in-flight requests without a deadline and closes. The current
// phase is observable through [Server.State].
package server
