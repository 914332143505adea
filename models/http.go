package models

// Header names shared by the HTTP server and the client adapter.
const (
	HeaderDeviceID = "X-Device-ID"
	HeaderTraceID  = "X-Trace-ID"

	// HeaderHash carries the hex HMAC-SHA256 of the request body when a
	// hash key is configured on both sides.
	HeaderHash = "HashSHA256"

	// HeaderHistoryID is set on a render response whose payload was saved.
	HeaderHistoryID = "X-History-ID"
)

// DefaultDeviceID owns the history of requests without an X-Device-ID header.
const DefaultDeviceID = "default"

// VersionResponse is the body of GET /api/version: the server version and
// what this server can do.
type VersionResponse struct {
	Version string         `json:"version"`
	Types   []QRDataType   `json:"types,omitempty"`
	Formats []ExportFormat `json:"formats,omitempty"`
	Share   bool           `json:"share"`
}

// HistoryListResponse is the body of GET /api/history.
type HistoryListResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Length  int            `json:"length"`
}

// TemplatesResponse is the body of GET /api/templates.
type TemplatesResponse struct {
	Templates []Template `json:"templates"`
	Presets   []Preset   `json:"presets"`
}
