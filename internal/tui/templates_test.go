package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-forge/models"
)

var testTemplates = []models.Template{
	{ID: "menu", Name: "Restaurant menu", Description: "Link to a menu", Type: models.TypeURL, Data: map[string]any{"value": "https://menu.example"}},
	{ID: "wifi-guest", Name: "Guest WiFi", Description: "Share guest WiFi", Type: models.TypeWifi, Data: map[string]any{"ssid": "Guest"}, Preset: "ocean"},
}

func loadTestTemplates(t *testing.T) (*templatesModel, *testMocks) {
	t.Helper()
	e, mocks := newTestEnv(t)
	m := newTemplatesModel(e)

	mocks.templates.EXPECT().List(gomock.Any()).Return(testTemplates)
	m.Update(singleMsg[templatesLoadedMsg](t, m.Init()))
	return m, mocks
}

func TestTemplatesModel_List(t *testing.T) {
	m, _ := loadTestTemplates(t)

	view := m.View()
	assert.Contains(t, view, "Restaurant menu")
	assert.Contains(t, view, "Guest WiFi")
}

func TestTemplatesModel_Apply(t *testing.T) {
	m, mocks := loadTestTemplates(t)

	opts := models.RenderOptions{Size: 220, ColorDark: "#0c4a6e", ColorLight: "#e0f2fe", CorrectLevel: models.CorrectMedium}
	mocks.templates.EXPECT().Apply(gomock.Any(), "wifi-guest").Return(models.AppliedTemplate{
		Template: testTemplates[1],
		Result:   models.Valid("WIFI:T:WPA;S:Guest;P:;H:false;;"),
		Options:  opts,
	}, nil)

	m.Update(keyType(tea.KeyDown))
	_, cmd := m.Update(keyType(tea.KeyEnter))
	_, cmd = m.Update(singleMsg[templateAppliedMsg](t, cmd))

	nav := singleMsg[NavigateTo](t, cmd)
	require.Equal(t, pageResult, nav.Page)

	open, ok := nav.Payload.(openResultMsg)
	require.True(t, ok)
	assert.Equal(t, models.TypeWifi, open.typed.Type)
	assert.JSONEq(t, `{"ssid":"Guest"}`, string(open.typed.Data))
	assert.Equal(t, "WIFI:T:WPA;S:Guest;P:;H:false;;", open.encoded)
	assert.Equal(t, opts, open.options)
	assert.True(t, open.save)
}

func TestTemplatesModel_ApplyInvalid(t *testing.T) {
	m, mocks := loadTestTemplates(t)

	mocks.templates.EXPECT().Apply(gomock.Any(), "menu").Return(models.AppliedTemplate{
		Template: testTemplates[0],
		Result:   models.Invalid("Please enter a valid URL"),
	}, nil)

	_, cmd := m.Update(keyType(tea.KeyEnter))
	_, cmd = m.Update(singleMsg[templateAppliedMsg](t, cmd))

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Please enter a valid URL")
}
