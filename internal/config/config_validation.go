// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

const maxPort = 65535

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 0 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
