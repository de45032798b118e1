// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the handlers and
// services: JSON response writing and ISO-8601 timestamp formatting.
package utils
