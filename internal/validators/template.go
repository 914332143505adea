package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/models"
)

// TemplateValidator checks templates loaded from YAML before they are
// offered to users: identity fields, a known type and data that encodes.
type TemplateValidator struct{}

func NewTemplateValidator() Validator {
	return &TemplateValidator{}
}

func (v *TemplateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Template:
		return v.validateTemplate(value)
	case *models.Template:
		return v.validateTemplate(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *TemplateValidator) validateTemplate(t models.Template) error {
	if t.ID == "" {
		return ErrEmptyTemplateID
	}
	if t.Name == "" {
		return ErrEmptyTemplateName
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}

	raw, err := json.Marshal(t.Data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateEncode, t.ID, err)
	}
	res := payload.EncodeTyped(models.TypedData{Type: t.Type, Data: raw})
	if !res.Valid {
		return fmt.Errorf("%w: %s: %s", ErrTemplateEncode, t.ID, res.Error)
	}

	return nil
}
