// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package service

import "time"

// cpuTimes reports no CPU time where rusage is unavailable.
func cpuTimes() (time.Duration, time.Duration, error) {
	return 0, 0, nil
}
