package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/models"
)

type menuItem struct {
	label string

	// qrType is set for the per-type entries, page for the others.
	qrType models.QRDataType
	page   string
}

type menuModel struct {
	items []menuItem
	idx   int
}

func newMenuModel() *menuModel {
	items := make([]menuItem, 0, len(models.AllTypes)+3)
	for _, t := range models.AllTypes {
		items = append(items, menuItem{label: t.Label(), qrType: t})
	}
	items = append(items,
		menuItem{label: "Templates", page: pageTemplates},
		menuItem{label: "History", page: pageHistory},
		menuItem{label: "About"},
	)
	return &menuModel{items: items}
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.about):
		return m, func() tea.Msg { return showAboutMsg{} }
	case key.Matches(keyMsg, keys.enter):
		return m, m.open(m.items[m.idx])
	}

	return m, nil
}

func (m *menuModel) open(item menuItem) tea.Cmd {
	switch {
	case item.qrType != "":
		msg := navigate(pageForm, openFormMsg{typed: models.TypedData{Type: item.qrType}})
		return func() tea.Msg { return msg }
	case item.page != "":
		msg := navigate(item.page, nil)
		return func() tea.Msg { return msg }
	default:
		return func() tea.Msg { return showAboutMsg{} }
	}
}

func (m *menuModel) View() string {
	var b strings.Builder

	b.WriteString("Create a QR code\n\n")
	for i, item := range m.items {
		if i == len(models.AllTypes) {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor(i == m.idx), i+1, item.label))
	}

	return renderPage("QR FORGE", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: about")
}
