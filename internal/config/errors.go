// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 0-65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
