// Package config loads, merges and validates go-qr-forge configuration.
//
// Values come from three sources, merged in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//
// A field set by an earlier source is never overwritten by a later one; later
// sources only fill fields that are still empty. Remaining gaps are filled
// with built-in defaults before validation.
//
// The entry points are [GetServerConfig] for the HTTP/gRPC server and
// [GetClientConfig] for the terminal client.
package config
