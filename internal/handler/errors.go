// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// a service layer. Handlers would otherwise fail on the first request.
var errNoServicesProvided = errors.New("no services are provided")
