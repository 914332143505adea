package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
)

func TestTemplateValidator(t *testing.T) {
	valid := models.Template{
		ID:   "wifi-guest",
		Name: "WiFi Guest",
		Type: models.TypeWifi,
		Data: map[string]any{"ssid": "GuestNetwork", "password": "welcome123", "encryption": "WPA"},
	}

	tests := []struct {
		name    string
		mutate  func(*models.Template)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Template) {}},
		{name: "no id", mutate: func(tp *models.Template) { tp.ID = "" }, wantErr: ErrEmptyTemplateID},
		{name: "no name", mutate: func(tp *models.Template) { tp.Name = "" }, wantErr: ErrEmptyTemplateName},
		{name: "unknown type", mutate: func(tp *models.Template) { tp.Type = "fax" }, wantErr: ErrInvalidType},
		{name: "does not encode", mutate: func(tp *models.Template) { tp.Data = map[string]any{"password": "x"} }, wantErr: ErrTemplateEncode},
		{name: "wrong field type", mutate: func(tp *models.Template) { tp.Data = map[string]any{"ssid": 12} }, wantErr: ErrTemplateEncode},
	}

	v := NewTemplateValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := valid
			tp.Data = map[string]any{}
			for k, val := range valid.Data {
				tp.Data[k] = val
			}
			tt.mutate(&tp)

			err := v.Validate(context.Background(), tp)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTemplateValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewTemplateValidator().Validate(context.Background(), models.Preset{}), ErrUnsupportedType)
}
