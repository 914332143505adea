package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/internal/templates"
	"github.com/MKhiriev/go-qr-forge/models"
)

type templatesModel struct {
	env *env

	templates []models.Template
	idx       int
	errMsg    string
}

func newTemplatesModel(e *env) *templatesModel {
	return &templatesModel{env: e}
}

func (m *templatesModel) Init() tea.Cmd {
	m.errMsg = ""
	return func() tea.Msg {
		return templatesLoadedMsg{templates: m.env.services.TemplateService.List(m.env.ctx)}
	}
}

func (m *templatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case templatesLoadedMsg:
		m.templates = msg.templates
		if m.idx >= len(m.templates) {
			m.idx = 0
		}
		return m, nil

	case templateAppliedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if !msg.applied.Result.Valid {
			m.errMsg = msg.applied.Result.Error
			return m, nil
		}

		typed, err := templates.Typed(msg.applied.Template)
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		next := navigate(pageResult, openResultMsg{
			typed:   typed,
			encoded: msg.applied.Result.Encoded,
			options: msg.applied.Options,
			save:    true,
		})
		return m, func() tea.Msg { return next }

	case tea.KeyMsg:
		m.errMsg = ""

		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return navigate(pageMenu, nil) }
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.templates)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if m.idx < len(m.templates) {
				return m, m.cmdApply(m.templates[m.idx].ID)
			}
		}
	}

	return m, nil
}

func (m *templatesModel) cmdApply(id string) tea.Cmd {
	return func() tea.Msg {
		applied, err := m.env.services.TemplateService.Apply(m.env.ctx, id)
		return templateAppliedMsg{applied: applied, err: err}
	}
}

func (m *templatesModel) View() string {
	var b strings.Builder

	if len(m.templates) == 0 {
		b.WriteString("No templates available.")
	}
	for i, t := range m.templates {
		b.WriteString(fmt.Sprintf("%s%-22s %s\n", cursor(i == m.idx), t.Name, fitText(t.Description, 48)))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("TEMPLATES", strings.TrimRight(b.String(), "\n"), "enter: use template │ ↑/↓: navigate │ esc: menu")
}
