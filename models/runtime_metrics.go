// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RuntimeMetrics is the body of GET /metrics: point-in-time process counters.
type RuntimeMetrics struct {
	UptimeSeconds float64     `json:"uptime_seconds"`
	MemoryUsage   MemoryUsage `json:"memory_usage_bytes"`
	CPUUsage      CPUUsage    `json:"cpu_usage"`
	Timestamp     string      `json:"timestamp"`
}

// MemoryUsage is a memory breakdown in bytes.
type MemoryUsage struct {
	// RSS is the resident set size of the process.
	RSS        uint64 `json:"rss"`
	// HeapTotal is the heap memory obtained from the OS.
	HeapTotal  uint64 `json:"heapTotal"`
	// HeapUsed is the memory held by reachable and not yet swept objects.
	HeapUsed   uint64 `json:"heapUsed"`
	// StackInUse is the memory used by goroutine stacks.
	StackInUse uint64 `json:"stackInUse"`
	// Sys is the total memory obtained from the OS by the Go runtime.
	Sys        uint64 `json:"sys"`
}

// CPUUsage is the CPU time accumulated by the process, in microseconds.
type CPUUsage struct {
	User   int64 `json:"user"`
	System int64 `json:"system"`
}
