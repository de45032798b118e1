// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package server

import (
	"context"
	"syscall"
	"testing"

	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServer_StopsOnSignal(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGTERM, syscall.SIGINT} {
		t.Run(sig.String(), func(t *testing.T) {
			cfg := testServerConfig()
			s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
			require.NoError(t, err)

			done := runInBackground(context.Background(), s)
			waitListening(t, s)

			require.NoError(t, syscall.Kill(syscall.Getpid(), sig))

			require.NoError(t, waitStopped(t, done))
			assert.Equal(t, StateStopped, s.State())
		})
	}
}
