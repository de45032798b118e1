// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build linux

package service

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// residentMemory reads the resident set size from /proc/self/stat.
func residentMemory() (uint64, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return 0, fmt.Errorf("error opening procfs: %w", err)
	}

	self, err := fs.Self()
	if err != nil {
		return 0, fmt.Errorf("error reading own process: %w", err)
	}

	stat, err := self.Stat()
	if err != nil {
		return 0, fmt.Errorf("error reading process stat: %w", err)
	}

	return uint64(stat.ResidentMemory()), nil
}
