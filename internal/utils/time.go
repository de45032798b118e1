// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// ISO8601 is the layout of every timestamp in a response body: UTC with
// millisecond precision, e.g. "2026-10-17T09:30:00.000Z". It parses with
// time.RFC3339.
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t in UTC using [ISO8601].
func Timestamp(t time.Time) string {
	return t.UTC().Format(ISO8601)
}
