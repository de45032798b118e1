// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// State is a lifecycle phase. Phases only move forward:
// StateStarting → StateListening → StateDraining → StateStopped.
type State int32

const (
	StateStarting State = iota
	StateListening
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "STARTING"
	case StateListening:
		return "LISTENING"
	case StateDraining:
		return "DRAINING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}
