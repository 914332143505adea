package models

// RenderOptions controls the visual rendering of a QR symbol.
// Zero values are replaced by configured defaults via WithDefaults.
type RenderOptions struct {
	// Size is the edge length of the symbol in pixels.
	Size int `json:"size,omitempty"`

	// ColorDark is the module colour as #rgb or #rrggbb.
	ColorDark string `json:"colorDark,omitempty"`

	// ColorLight is the background colour as #rgb or #rrggbb.
	ColorLight string `json:"colorLight,omitempty"`

	// CorrectLevel is the error correction level.
	CorrectLevel CorrectLevel `json:"correctLevel,omitempty"`

	// Label and Sublabel caption the framed poster. Other formats ignore
	// them.
	Label    string `json:"label,omitempty"`
	Sublabel string `json:"sublabel,omitempty"`
}

// WithDefaults returns a copy of o where every zero field is taken from def.
func (o RenderOptions) WithDefaults(def RenderOptions) RenderOptions {
	if o.Size == 0 {
		o.Size = def.Size
	}
	if o.ColorDark == "" {
		o.ColorDark = def.ColorDark
	}
	if o.ColorLight == "" {
		o.ColorLight = def.ColorLight
	}
	if o.CorrectLevel == "" {
		o.CorrectLevel = def.CorrectLevel
	}
	return o
}

// RenderRequest asks the server to encode a payload and render it.
type RenderRequest struct {
	TypedData

	Options RenderOptions `json:"options"`
	Format  ExportFormat  `json:"format,omitempty"`

	// Save adds the encoded payload to the caller's history.
	Save bool `json:"save,omitempty"`
}

// Rendered is a rendered QR artefact.
type Rendered struct {
	Encoded string
	Format  ExportFormat
	Content []byte
}

// DetectRequest carries raw scanned or pasted text.
type DetectRequest struct {
	Text string `json:"text"`
}
