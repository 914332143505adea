package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/models"
)

// Replaced in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// smartPaste reads the clipboard, detects what kind of payload it holds and
// opens the matching form prefilled with the recovered fields.
func smartPaste(e *env) tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			e.logger.Err(err).Str("func", "smartPaste").Msg("failed to read clipboard")
			return pasteFailedMsg{message: "Clipboard is not available"}
		}
		if strings.TrimSpace(text) == "" {
			return pasteFailedMsg{message: "Clipboard is empty"}
		}

		detected := e.services.PayloadService.Detect(e.ctx, text)
		typed, err := models.NewTypedData(detected.Data)
		if err != nil {
			e.logger.Err(err).Str("func", "smartPaste").Msg("failed to wrap detected payload")
			return pasteFailedMsg{message: "Could not recognise clipboard content"}
		}

		return navigate(pageForm, openFormMsg{typed: typed, source: "clipboard"})
	}
}
