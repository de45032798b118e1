// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !linux

package service

func residentMemory() (uint64, error) {
	return 0, errResidentMemoryUnsupported
}
