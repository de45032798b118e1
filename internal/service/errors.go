// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned when the app info service is
	// built from a configuration whose defaults were not resolved.
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrReadingCPUUsage is returned when the CPU time of the process cannot
	// be read from the operating system.
	ErrReadingCPUUsage = errors.New("error reading CPU usage")

	errResidentMemoryUnsupported = errors.New("resident memory is not available on this platform")
)
