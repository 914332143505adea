package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/models"
)

// resultModel shows a generated QR code as terminal art and offers the
// export actions.
type resultModel struct {
	env *env

	typed   models.TypedData
	encoded string
	options models.RenderOptions

	art    string
	status string
	errMsg string
}

func newResultModel(e *env) *resultModel {
	return &resultModel{env: e}
}

func (m *resultModel) Init() tea.Cmd {
	return nil
}

func (m *resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openResultMsg:
		m.typed = msg.typed
		m.encoded = msg.encoded
		m.options = msg.options.WithDefaults(m.env.services.RenderService.Defaults())
		m.art = ""
		m.status = ""
		m.errMsg = ""

		cmds := []tea.Cmd{m.cmdRender()}
		if msg.save {
			cmds = append(cmds, m.cmdSaveHistory())
		}
		return m, tea.Batch(cmds...)

	case renderedMsg:
		// A slow render for a level the user already cycled past is stale.
		if msg.level != m.options.CorrectLevel {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.art = msg.art
		return m, nil

	case historySavedMsg:
		if msg.err != nil {
			m.errMsg = "Not saved to history: " + humanizeError(msg.err)
		}
		return m, nil

	case pngSavedMsg:
		if msg.err != nil {
			m.errMsg = "PNG export failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.status = "Saved to " + msg.path
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is not available"
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		m.errMsg = ""

		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return navigate(pageMenu, nil) }
		case key.Matches(msg, keys.level):
			m.options.CorrectLevel = nextLevel(m.options.CorrectLevel)
			return m, m.cmdRender()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.save):
			return m, m.cmdSavePNG()
		case key.Matches(msg, keys.edit):
			next := navigate(pageForm, openFormMsg{typed: m.typed})
			return m, func() tea.Msg { return next }
		}
	}

	return m, nil
}

// nextLevel cycles L, M, Q, H and back to L.
func nextLevel(l models.CorrectLevel) models.CorrectLevel {
	for i, lvl := range models.CorrectLevels {
		if lvl == l {
			return models.CorrectLevels[(i+1)%len(models.CorrectLevels)]
		}
	}
	return models.CorrectLevels[0]
}

func (m *resultModel) cmdRender() tea.Cmd {
	encoded, opts := m.encoded, m.options
	return func() tea.Msg {
		out, err := m.env.services.RenderService.RenderEncoded(m.env.ctx, encoded, opts, models.FormatTXT)
		if err != nil {
			return renderedMsg{level: opts.CorrectLevel, err: err}
		}
		return renderedMsg{level: opts.CorrectLevel, art: string(out.Content)}
	}
}

func (m *resultModel) cmdSaveHistory() tea.Cmd {
	typed := m.typed
	return func() tea.Msg {
		_, err := m.env.services.HistoryService.Add(m.env.ctx, m.env.owner, typed)
		return historySavedMsg{err: err}
	}
}

func (m *resultModel) cmdCopy() tea.Cmd {
	encoded := m.encoded
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(encoded)}
	}
}

func (m *resultModel) cmdSavePNG() tea.Cmd {
	encoded, opts, qrType := m.encoded, m.options, m.typed.Type
	return func() tea.Msg {
		out, err := m.env.services.RenderService.RenderEncoded(m.env.ctx, encoded, opts, models.FormatPNG)
		if err != nil {
			return pngSavedMsg{err: err}
		}

		name := fmt.Sprintf("qr-%s-%s.png", qrType, m.env.now().Format("20060102-150405"))
		path := filepath.Join(m.env.saveDir, name)
		if err = os.WriteFile(path, out.Content, 0o644); err != nil {
			m.env.logger.Err(err).Str("func", "*resultModel.cmdSavePNG").Str("path", path).Msg("failed to write PNG")
			return pngSavedMsg{err: err}
		}
		return pngSavedMsg{path: path}
	}
}

func (m *resultModel) View() string {
	var b strings.Builder

	if m.art != "" {
		b.WriteString(m.art)
		b.WriteString("\n")
	} else if m.errMsg == "" {
		b.WriteString("Rendering...\n\n")
	}

	b.WriteString(payloadStyle.Render(fitText(m.encoded, 72)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Error correction: %s", m.options.CorrectLevel))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(
		strings.ToUpper(m.typed.Type.Label())+" QR CODE",
		b.String(),
		"l: error correction │ c: copy │ s: save PNG │ e: edit │ esc: menu",
	)
}
