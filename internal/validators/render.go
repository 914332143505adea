package validators

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-qr-forge/models"
)

const (
	FieldSize         = "size"
	FieldColorDark    = "color_dark"
	FieldColorLight   = "color_light"
	FieldCorrectLevel = "correct_level"
	FieldFormat       = "format"
	FieldType         = "type"
	FieldLabel        = "label"
)

const (
	MinSize = 64
	MaxSize = 2048

	// MaxLabelLength caps each poster caption, in characters.
	MaxLabelLength = 64
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RenderValidator checks the visual options of render and share requests.
// Options are expected to have defaults applied already.
type RenderValidator struct{}

func NewRenderValidator() Validator {
	return &RenderValidator{}
}

func (v *RenderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RenderOptions:
		return v.validateOptions(value, fields...)
	case *models.RenderOptions:
		return v.validateOptions(*value, fields...)

	case models.RenderRequest:
		return v.validateRenderRequest(value, fields...)
	case *models.RenderRequest:
		return v.validateRenderRequest(*value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RenderValidator) validateRenderRequest(req models.RenderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldFormat, FieldSize, FieldColorDark, FieldColorLight, FieldCorrectLevel, FieldLabel}
	}

	optionFields := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldType:
			if !req.Type.IsValid() {
				return ErrInvalidType
			}
		case FieldFormat:
			if req.Format != "" && !req.Format.IsValid() {
				return ErrInvalidFormat
			}
		default:
			optionFields = append(optionFields, f)
		}
	}

	if len(optionFields) == 0 {
		return nil
	}
	return v.validateOptions(req.Options, optionFields...)
}

func (v *RenderValidator) validateShareRequest(req models.ShareRequest, fields ...string) error {
	if !req.Type.IsValid() {
		return ErrInvalidType
	}
	return v.validateOptions(req.Options, fields...)
}

func (v *RenderValidator) validateOptions(o models.RenderOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSize, FieldColorDark, FieldColorLight, FieldCorrectLevel, FieldLabel}
	}

	for _, f := range fields {
		switch f {
		case FieldSize:
			if o.Size < MinSize || o.Size > MaxSize {
				return ErrInvalidSize
			}
		case FieldColorDark:
			if !hexColor.MatchString(o.ColorDark) {
				return fmt.Errorf("%w: dark %q", ErrInvalidColor, o.ColorDark)
			}
		case FieldColorLight:
			if !hexColor.MatchString(o.ColorLight) {
				return fmt.Errorf("%w: light %q", ErrInvalidColor, o.ColorLight)
			}
		case FieldCorrectLevel:
			if !o.CorrectLevel.IsValid() {
				return ErrInvalidCorrectLevel
			}
		case FieldLabel:
			if utf8.RuneCountInString(o.Label) > MaxLabelLength || utf8.RuneCountInString(o.Sublabel) > MaxLabelLength {
				return ErrLabelTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
