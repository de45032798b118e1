// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the service configuration once at startup.
//
// Values are read from environment variables and merged with the built-in
// defaults: a variable that is absent or empty falls back to its default,
// it never produces an error. The resulting [StructuredConfig] is immutable
// and threaded explicitly into the services, handlers and server.
//
// The main entry point is [GetStructuredConfig].
package config
