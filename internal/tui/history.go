package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

// historyModel lists locally stored entries, newest first.
type historyModel struct {
	env *env

	entries []models.HistoryEntry
	idx     int

	loading bool
	confirm *confirmModel
	status  string
	errMsg  string
}

func newHistoryModel(e *env) *historyModel {
	return &historyModel{env: e}
}

func (m *historyModel) Init() tea.Cmd {
	m.loading = true
	m.confirm = nil
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *historyModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.env.services.HistoryService.List(m.env.ctx, m.env.owner)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = max(len(m.entries)-1, 0)
		}
		return m, nil

	case historyChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.status
		return m, m.cmdLoad()

	case tea.KeyMsg:
		if m.confirm != nil {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirm = nil
				return m, m.cmdClear()
			case key.Matches(msg, keys.no):
				m.confirm = nil
			}
			return m, nil
		}

		m.status = ""
		m.errMsg = ""

		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return navigate(pageMenu, nil) }
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.entries)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.clear):
			if len(m.entries) > 0 {
				m.confirm = &confirmModel{question: "Clear the whole history?"}
			}
		case key.Matches(msg, keys.delete):
			if entry, ok := m.selected(); ok {
				return m, m.cmdRemove(entry.ID)
			}
		case key.Matches(msg, keys.enter):
			if entry, ok := m.selected(); ok {
				next := navigate(pageResult, openResultMsg{
					typed:   entry.Typed(),
					encoded: entry.Payload,
					options: m.env.services.RenderService.Defaults(),
				})
				return m, func() tea.Msg { return next }
			}
		}
	}

	return m, nil
}

func (m *historyModel) selected() (models.HistoryEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return models.HistoryEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *historyModel) cmdRemove(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.env.services.HistoryService.Remove(m.env.ctx, m.env.owner, id)
		return historyChangedMsg{status: "Entry removed", err: err}
	}
}

func (m *historyModel) cmdClear() tea.Cmd {
	return func() tea.Msg {
		err := m.env.services.HistoryService.Clear(m.env.ctx, m.env.owner)
		return historyChangedMsg{status: "History cleared", err: err}
	}
}

func (m *historyModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.entries) == 0 && m.errMsg == "":
		b.WriteString("No QR codes yet.")
	default:
		now := m.env.now()
		for i, entry := range m.entries {
			b.WriteString(fmt.Sprintf("%s%-8s %-40s %s\n",
				cursor(i == m.idx),
				entry.Type.Label(),
				fitText(entry.Payload, 40),
				utils.TimeAgo(entry.CreatedAt, now),
			))
		}
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(
		"HISTORY",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ d: delete │ x: clear all │ r: reload │ esc: menu",
	)
}
