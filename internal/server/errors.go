// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports is returned when neither the HTTP nor the gRPC address is
// configured, or the matching handler is missing.
var errNoTransports = errors.New("no transport configured: set an HTTP or gRPC address")
