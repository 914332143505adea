package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/models"
)

// formInput is the state of one field. Text fields use input; choice and
// bool fields use choice and checked.
type formInput struct {
	spec    fieldSpec
	input   textinput.Model
	choice  int
	checked bool
}

// formModel edits the record of one QR type and encodes it on submit.
type formModel struct {
	env *env

	qrType models.QRDataType
	fields []formInput
	focus  int

	source string
	errMsg string
}

func newFormModel(e *env) *formModel {
	return &formModel{env: e}
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

// reset builds the inputs for typed.Type and fills them from typed.Data.
func (m *formModel) reset(typed models.TypedData, source string) {
	m.qrType = typed.Type
	m.source = source
	m.errMsg = ""
	m.focus = 0

	values := map[string]any{}
	if len(typed.Data) > 0 {
		if err := json.Unmarshal(typed.Data, &values); err != nil {
			m.env.logger.Err(err).
				Str("func", "*formModel.reset").
				Str("type", string(typed.Type)).
				Str("source", source).
				Msg("failed to decode saved fields")
			m.errMsg = "Saved fields could not be read"
		}
	}

	specs := formFields[typed.Type]
	m.fields = make([]formInput, len(specs))
	for i, spec := range specs {
		f := formInput{spec: spec}

		switch spec.kind {
		case fieldChoice:
			if v, ok := values[spec.key].(string); ok {
				for j, c := range spec.choices {
					if strings.EqualFold(c, v) {
						f.choice = j
					}
				}
			}
		case fieldBool:
			f.checked, _ = values[spec.key].(bool)
		default:
			in := textinput.New()
			in.Placeholder = spec.placeholder
			in.Width = 48
			in.CharLimit = spec.charLimit
			if spec.kind == fieldSecret {
				in.EchoMode = textinput.EchoPassword
			}
			if v, ok := values[spec.key].(string); ok {
				in.SetValue(v)
			}
			f.input = in
		}

		m.fields[i] = f
	}

	m.applyFocus()
}

func (m *formModel) applyFocus() {
	for i := range m.fields {
		if !m.isTextField(i) {
			continue
		}
		if i == m.focus {
			m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
}

func (m *formModel) isTextField(i int) bool {
	k := m.fields[i].spec.kind
	return k == fieldText || k == fieldSecret
}

// typed collects the inputs into an envelope. Empty text fields are left out
// so optional record fields stay unset.
func (m *formModel) typed() models.TypedData {
	values := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		switch f.spec.kind {
		case fieldChoice:
			values[f.spec.key] = f.spec.choices[f.choice]
		case fieldBool:
			values[f.spec.key] = f.checked
		default:
			if v := f.input.Value(); v != "" {
				values[f.spec.key] = v
			}
		}
	}

	raw, _ := json.Marshal(values)
	return models.TypedData{Type: m.qrType, Data: raw}
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openFormMsg:
		m.reset(msg.typed, msg.source)
		return m, textinput.Blink

	case encodedMsg:
		if !msg.result.Valid {
			m.errMsg = msg.result.Error
			return m, nil
		}
		m.errMsg = ""
		next := navigate(pageResult, openResultMsg{
			typed:   msg.typed,
			encoded: msg.result.Encoded,
			options: m.env.services.RenderService.Defaults(),
			save:    true,
		})
		return m, func() tea.Msg { return next }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return navigate(pageMenu, nil) }
		case key.Matches(msg, keys.submit):
			return m, m.cmdEncode()
		case key.Matches(msg, keys.enter):
			if m.focus == len(m.fields)-1 {
				return m, m.cmdEncode()
			}
			m.move(1)
			return m, nil
		case key.Matches(msg, keys.tab):
			m.move(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.move(-1)
			return m, nil
		}

		if len(m.fields) == 0 {
			return m, nil
		}

		f := &m.fields[m.focus]
		switch f.spec.kind {
		case fieldChoice:
			switch {
			case key.Matches(msg, keys.right), key.Matches(msg, keys.toggle):
				f.choice = (f.choice + 1) % len(f.spec.choices)
			case key.Matches(msg, keys.left):
				f.choice = (f.choice + len(f.spec.choices) - 1) % len(f.spec.choices)
			}
			return m, nil
		case fieldBool:
			if key.Matches(msg, keys.toggle) {
				f.checked = !f.checked
			}
			return m, nil
		}
	}

	if len(m.fields) == 0 || !m.isTextField(m.focus) {
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *formModel) move(delta int) {
	if len(m.fields) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.applyFocus()
}

func (m *formModel) cmdEncode() tea.Cmd {
	typed := m.typed()
	return func() tea.Msg {
		return encodedMsg{
			typed:  typed,
			result: m.env.services.PayloadService.Encode(m.env.ctx, typed),
		}
	}
}

func (m *formModel) View() string {
	var b strings.Builder

	if m.source != "" {
		b.WriteString(okStyle.Render("Prefilled from " + m.source))
		b.WriteString("\n\n")
	}

	labelWidth := 0
	for _, f := range m.fields {
		if w := len(f.spec.label); w > labelWidth {
			labelWidth = w
		}
	}

	for i, f := range m.fields {
		b.WriteString(cursor(i == m.focus))
		b.WriteString(fmt.Sprintf("%-*s  ", labelWidth, f.spec.label))
		switch f.spec.kind {
		case fieldChoice:
			b.WriteString("< " + f.spec.choices[f.choice] + " >")
		case fieldBool:
			if f.checked {
				b.WriteString("[x]")
			} else {
				b.WriteString("[ ]")
			}
		default:
			b.WriteString(f.input.View())
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		strings.ToUpper(m.qrType.Label())+" QR CODE",
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→, space: change option │ enter/ctrl+s: generate │ esc: menu",
	)
}
