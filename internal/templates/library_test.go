package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_AllEncode(t *testing.T) {
	lib := NewLibrary(File{})

	for _, tp := range lib.List() {
		t.Run(tp.ID, func(t *testing.T) {
			typed, err := Typed(tp)
			require.NoError(t, err)

			res := payload.EncodeTyped(typed)
			assert.True(t, res.Valid, res.Error)

			_, ok := lib.Preset(tp.Preset)
			assert.True(t, ok, "preset %q must exist", tp.Preset)
		})
	}
}

func TestBuiltin_WifiGuest(t *testing.T) {
	tp, err := NewLibrary(File{}).Get("wifi-guest")
	require.NoError(t, err)

	typed, err := Typed(tp)
	require.NoError(t, err)

	assert.Equal(t, models.Valid("WIFI:T:WPA;S:GuestNetwork;P:welcome123;H:false;;"), payload.EncodeTyped(typed))
}

func TestLibrary_Get_NotFound(t *testing.T) {
	_, err := NewLibrary(File{}).Get("nope")

	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestLibrary_ExtraOverridesAndAppends(t *testing.T) {
	lib := NewLibrary(File{
		Presets: []models.Preset{
			{Name: "classic", ColorDark: "#111111", ColorLight: "#eeeeee"},
			{Name: "brand", ColorDark: "#123456", ColorLight: "#ffffff"},
		},
		Templates: []models.Template{
			{ID: "feedback-form", Name: "Survey", Type: models.TypeURL, Data: map[string]any{"value": "survey.example.com"}, Preset: "brand"},
			{ID: "office-wifi", Name: "Office", Type: models.TypeWifi, Data: map[string]any{"ssid": "Office"}},
		},
	})

	list := lib.List()
	require.Len(t, list, 9)
	assert.Equal(t, "restaurant-menu", list[0].ID)
	assert.Equal(t, "Survey", list[7].Name)
	assert.Equal(t, "office-wifi", list[8].ID)

	p, ok := lib.Preset("classic")
	require.True(t, ok)
	assert.Equal(t, "#111111", p.ColorDark)

	_, ok = lib.Preset("brand")
	assert.True(t, ok)
}

func TestLibrary_ListIsACopy(t *testing.T) {
	lib := NewLibrary(File{})

	list := lib.List()
	list[0].Name = "changed"

	tp, err := lib.Get(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Restaurant Menu", tp.Name)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
presets:
  - name: brand
    colorDark: "#123456"
    colorLight: "#fafafa"
templates:
  - id: support-line
    name: Support Line
    description: Call support
    type: phone
    data:
      value: "+1 800 555 0100"
    preset: brand
  - id: lobby-wifi
    name: Lobby WiFi
    type: wifi
    data:
      ssid: Lobby
      encryption: nopass
      hidden: true
`), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, f.Presets, 1)
	assert.Equal(t, models.Preset{Name: "brand", ColorDark: "#123456", ColorLight: "#fafafa"}, f.Presets[0])

	require.Len(t, f.Templates, 2)
	assert.Equal(t, models.TypePhone, f.Templates[0].Type)

	typed, err := Typed(f.Templates[1])
	require.NoError(t, err)
	assert.Equal(t, models.Valid("WIFI:T:nopass;S:Lobby;P:;H:true;;"), payload.EncodeTyped(typed))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates: [\n"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestLoad_ValidatesTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
templates:
  - id: ok
    name: Fine
    type: url
    data:
      value: example.com
  - id: broken
    name: No SSID
    type: wifi
    data:
      password: secret
  - name: Missing id
    type: text
    data:
      value: hi
`), 0o600))

	_, err := Load(context.Background(), path, validators.NewTemplateValidator())
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrTemplateEncode)
	assert.ErrorIs(t, err, validators.ErrEmptyTemplateID)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoad_EmptyPath(t *testing.T) {
	f, err := Load(context.Background(), "", validators.NewTemplateValidator())
	require.NoError(t, err)
	assert.Empty(t, f.Templates)
}
