package tui

import (
	"github.com/MKhiriev/go-qr-forge/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

func navigate(page string, payload any) NavigateTo {
	return NavigateTo{Page: page, Payload: payload}
}

// openFormMsg opens the form for typed.Type, prefilled from typed.Data.
type openFormMsg struct {
	typed  models.TypedData
	source string
}

// openResultMsg shows an encoded payload. With save set it is added to the
// local history first.
type openResultMsg struct {
	typed   models.TypedData
	encoded string
	options models.RenderOptions
	save    bool
}

type encodedMsg struct {
	typed  models.TypedData
	result models.EncodeResult
}

type renderedMsg struct {
	level models.CorrectLevel
	art   string
	err   error
}

type historySavedMsg struct {
	err error
}

type pngSavedMsg struct {
	path string
	err  error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historyChangedMsg struct {
	status string
	err    error
}

type templatesLoadedMsg struct {
	templates []models.Template
}

type templateAppliedMsg struct {
	applied models.AppliedTemplate
	err     error
}

type copiedMsg struct {
	err error
}

type pasteFailedMsg struct {
	message string
}

type showAboutMsg struct{}

type serverStatusMsg struct {
	version string
	err     error
}
