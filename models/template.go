package models

// Template is a pre-built payload for a common use case.
type Template struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Type QRDataType `json:"type" yaml:"type"`

	// Data holds the record fields by their JSON names.
	Data map[string]any `json:"data" yaml:"data"`

	// Preset names the colour preset the template is rendered with.
	Preset string `json:"preset,omitempty" yaml:"preset"`
}

// Preset is a named pair of colours.
type Preset struct {
	Name       string `json:"name" yaml:"name"`
	ColorDark  string `json:"colorDark" yaml:"colorDark"`
	ColorLight string `json:"colorLight" yaml:"colorLight"`
}

// AppliedTemplate is a template with its payload encoded and its preset
// resolved into render options.
type AppliedTemplate struct {
	Template Template      `json:"template"`
	Result   EncodeResult  `json:"result"`
	Options  RenderOptions `json:"options"`
}
