// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the local SQLite history, the client services, the optional
// history sync worker and the terminal UI into a single process lifecycle.
package client
