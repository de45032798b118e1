// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the JSON records returned by the HTTP endpoints.
// Every endpoint has its own concrete type; timestamps are ISO-8601 strings.
package models

// ServiceName is the fixed identifier reported by the root endpoint.
const ServiceName = "it-works-on-my-machine"

// Fixed status values.
const (
	StatusRunning = "running"
	StatusHealthy = "healthy"
	StatusReady   = "ready"

	HealthMessage = "Still working... on *my* machine 🧃"
)

// ServiceInfo is the body of GET /.
type ServiceInfo struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// HealthStatus is the body of GET /health.
// Uptime is the process uptime in seconds.
type HealthStatus struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Uptime      float64 `json:"uptime"`
	Timestamp   string  `json:"timestamp"`
	Version     string  `json:"version"`
	Environment string  `json:"environment"`
}

// ReadinessStatus is the body of GET /ready.
type ReadinessStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// VersionInfo is the body of GET /version.
type VersionInfo struct {
	Version   string `json:"version"`
	Build     string `json:"build"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

// ErrorResponse is the body of the 404 and 500 responses.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
