// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package service

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTimes returns the user and system CPU time consumed by the process.
func cpuTimes() (time.Duration, time.Duration, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0, 0, err
	}

	return time.Duration(usage.Utime.Nano()), time.Duration(usage.Stime.Nano()), nil
}
