// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc with millis",
			in:   time.Date(2026, 10, 17, 9, 30, 0, 123_456_789, time.UTC),
			want: "2026-10-17T09:30:00.123Z",
		},
		{
			name: "zero millis are kept",
			in:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			want: "2026-01-02T03:04:05.000Z",
		},
		{
			name: "other zones are converted to utc",
			in:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+3", 3*60*60)),
			want: "2026-01-02T00:04:05.000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Timestamp(tt.in)
			assert.Equal(t, tt.want, got)

			parsed, err := time.Parse(time.RFC3339, got)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.in.Truncate(time.Millisecond)))
		})
	}
}
