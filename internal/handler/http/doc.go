// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the service.
//
// It wires the chi router, the middleware chain and the route handlers.
// Cross-cutting concerns such as security headers, request tracing, access
// logging and panic recovery are handled here before requests reach the
// handlers, which only ask the service layer for a payload and encode it.
// Unmatched routes end in the not-found handler, failed handlers in the
// error handler.
package http
