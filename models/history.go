package models

import (
	"encoding/json"
	"time"
)

// HistoryEntry is one previously generated payload.
// Entries are immutable; regenerating one produces a new entry.
type HistoryEntry struct {
	// ID is a UUIDv7 assigned when the entry is stored.
	ID string `json:"id"`

	// Owner is the device the entry belongs to.
	Owner string `json:"owner,omitempty"`

	// Type and Data are the structured input the payload was encoded from.
	Type QRDataType      `json:"type"`
	Data json.RawMessage `json:"data"`

	// Payload is the encoded string, kept so the caller can regenerate
	// the symbol without re-running validation.
	Payload string `json:"payload"`

	// Fingerprint identifies equal payloads; adding an entry replaces any
	// earlier entry with the same fingerprint.
	Fingerprint string `json:"fingerprint"`

	CreatedAt time.Time `json:"created_at"`
}

// Typed returns the entry as a TypedData envelope.
func (h HistoryEntry) Typed() TypedData {
	return TypedData{Type: h.Type, Data: h.Data}
}

// HistoryImportRequest replaces a device's server-side history with the
// entries uploaded by the client.
type HistoryImportRequest struct {
	Entries []HistoryEntry `json:"entries"`
	Length  int            `json:"length"`
}
