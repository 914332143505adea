// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package payload turns structured QR input into the exact text a QR reader
// must decode, and classifies arbitrary text back into structured input.
//
// Three pieces live here:
//   - encoders (EncodeWifi, EncodeEmail, EncodePhone, EncodeSMS, EncodeVCard)
//     producing the WIFI:, mailto:, tel:, smsto: and vCard 3.0 micro-formats;
//   - Encode, which validates a [models.Payload] and dispatches to its encoder,
//     always returning a [models.EncodeResult];
//   - Detect, which classifies scanned or pasted text into a
//     [models.DetectionResult].
//
// All functions are pure and safe for concurrent use. Nothing in this package
// performs I/O or keeps state between calls.
package payload
