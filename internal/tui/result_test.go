package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-forge/models"
)

func openTestResult(t *testing.T, save bool) (*resultModel, *testMocks, []tea.Msg) {
	t.Helper()
	e, mocks := newTestEnv(t)
	m := newResultModel(e)

	typed := mustTyped(t, models.URLData{Value: "https://example.com"})
	mocks.render.EXPECT().Defaults().Return(testDefaults())
	mocks.render.EXPECT().
		RenderEncoded(gomock.Any(), "https://example.com", testDefaults(), models.FormatTXT).
		Return(models.Rendered{Encoded: "https://example.com", Format: models.FormatTXT, Content: []byte("██ ██")}, nil)
	if save {
		mocks.history.EXPECT().Add(gomock.Any(), testOwner, typed).Return(models.HistoryEntry{ID: "h1"}, nil)
	}

	_, cmd := m.Update(openResultMsg{
		typed:   typed,
		encoded: "https://example.com",
		options: models.RenderOptions{},
		save:    save,
	})
	msgs := runCmd(t, cmd)
	for _, msg := range msgs {
		m.Update(msg)
	}
	return m, mocks, msgs
}

func TestResultModel_OpenRendersAndSaves(t *testing.T) {
	m, _, msgs := openTestResult(t, true)

	require.Len(t, msgs, 2)
	assert.Equal(t, "██ ██", m.art)
	assert.Empty(t, m.errMsg)

	view := m.View()
	assert.Contains(t, view, "██ ██")
	assert.Contains(t, view, "Error correction: M")
}

func TestResultModel_OpenWithoutSave(t *testing.T) {
	_, _, msgs := openTestResult(t, false)
	assert.Len(t, msgs, 1)
}

func TestResultModel_HistoryFailureShown(t *testing.T) {
	m, _, _ := openTestResult(t, false)

	m.Update(historySavedMsg{err: errors.New("disk full")})

	assert.Equal(t, "Not saved to history: disk full", m.errMsg)
}

func TestResultModel_CycleLevel(t *testing.T) {
	m, mocks, _ := openTestResult(t, false)

	want := testDefaults()
	want.CorrectLevel = models.CorrectQuartile
	mocks.render.EXPECT().
		RenderEncoded(gomock.Any(), "https://example.com", want, models.FormatTXT).
		Return(models.Rendered{Content: []byte("QQ")}, nil)

	_, cmd := m.Update(keyRunes("l"))
	rendered := singleMsg[renderedMsg](t, cmd)
	assert.Equal(t, models.CorrectQuartile, rendered.level)

	// a late render for the previous level must not win
	m.Update(renderedMsg{level: models.CorrectMedium, art: "stale"})
	m.Update(rendered)

	assert.Equal(t, "QQ", m.art)
	assert.Equal(t, models.CorrectQuartile, m.options.CorrectLevel)
}

func TestNextLevel(t *testing.T) {
	tests := []struct {
		in   models.CorrectLevel
		want models.CorrectLevel
	}{
		{models.CorrectLow, models.CorrectMedium},
		{models.CorrectMedium, models.CorrectQuartile},
		{models.CorrectQuartile, models.CorrectHigh},
		{models.CorrectHigh, models.CorrectLow},
		{"", models.CorrectLow},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, nextLevel(tt.in))
		})
	}
}

func TestResultModel_Copy(t *testing.T) {
	m, _, _ := openTestResult(t, false)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(keyRunes("c"))
	m.Update(singleMsg[copiedMsg](t, cmd))

	assert.Equal(t, "https://example.com", copied)
	assert.Equal(t, "Copied to clipboard", m.status)
}

func TestResultModel_CopyUnavailable(t *testing.T) {
	m, _, _ := openTestResult(t, false)

	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no xclip") }
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(keyRunes("c"))
	m.Update(singleMsg[copiedMsg](t, cmd))

	assert.Equal(t, "Clipboard is not available", m.errMsg)
}

func TestResultModel_SavePNG(t *testing.T) {
	m, mocks, _ := openTestResult(t, false)

	mocks.render.EXPECT().
		RenderEncoded(gomock.Any(), "https://example.com", testDefaults(), models.FormatPNG).
		Return(models.Rendered{Format: models.FormatPNG, Content: []byte("\x89PNG")}, nil)

	_, cmd := m.Update(keyRunes("s"))
	saved := singleMsg[pngSavedMsg](t, cmd)
	require.NoError(t, saved.err)

	assert.Equal(t, filepath.Join(m.env.saveDir, "qr-url-20260301-120000.png"), saved.path)
	content, err := os.ReadFile(saved.path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), content)

	m.Update(saved)
	assert.Equal(t, "Saved to "+saved.path, m.status)
}

func TestResultModel_EditAndBack(t *testing.T) {
	m, _, _ := openTestResult(t, false)

	_, cmd := m.Update(keyRunes("e"))
	nav := singleMsg[NavigateTo](t, cmd)
	assert.Equal(t, pageForm, nav.Page)
	assert.Equal(t, openFormMsg{typed: m.typed}, nav.Payload)

	_, cmd = m.Update(keyType(tea.KeyEsc))
	assert.Equal(t, navigate(pageMenu, nil), singleMsg[NavigateTo](t, cmd))
}
