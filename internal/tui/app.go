package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/models"
)

const (
	pageMenu      = "menu"
	pageForm      = "form"
	pageResult    = "result"
	pageHistory   = "history"
	pageTemplates = "templates"
)

// rootModel is the page router:
// 1) keeps the active page
// 2) handles ctrl+c, ctrl+v smart paste and the about window with the
//    server status
// 3) handles NavigateTo messages
// 4) delegates everything else to the active page
type rootModel struct {
	env   *env
	pages map[string]tea.Model

	current      string
	buildInfo    models.AppBuildInfo
	showAbout    bool
	pasteStatus  string
	serverStatus string
}

func newRootModel(e *env, buildInfo models.AppBuildInfo) rootModel {
	return rootModel{
		env: e,
		pages: map[string]tea.Model{
			pageMenu:      newMenuModel(),
			pageForm:      newFormModel(e),
			pageResult:    newResultModel(e),
			pageHistory:   newHistoryModel(e),
			pageTemplates: newTemplatesModel(e),
		},
		current:   pageMenu,
		buildInfo: buildInfo,
	}
}

func (r rootModel) Init() tea.Cmd {
	return r.pages[r.current].Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "ctrl+v":
			r.pasteStatus = ""
			return r, smartPaste(r.env)
		case "esc":
			if r.showAbout {
				r.showAbout = false
				return r, nil
			}
		}
		if r.showAbout {
			return r, nil
		}

	case showAboutMsg:
		r.showAbout = true
		if r.env.services.SyncService == nil {
			r.serverStatus = "offline mode"
			return r, nil
		}
		r.serverStatus = "checking..."
		return r, checkServer(r.env)

	case serverStatusMsg:
		if msg.err != nil {
			r.serverStatus = humanizeError(msg.err)
		} else {
			r.serverStatus = "version " + msg.version
		}
		return r, nil

	case pasteFailedMsg:
		r.pasteStatus = msg.message
		return r, nil

	case NavigateTo:
		if _, ok := r.pages[msg.Page]; !ok {
			return r, nil
		}
		r.current = msg.Page
		r.showAbout = false
		r.pasteStatus = ""

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.pages[r.current].Init()
	}

	page, cmd := r.pages[r.current].Update(msg)
	r.pages[r.current] = page
	return r, cmd
}

func checkServer(e *env) tea.Cmd {
	return func() tea.Msg {
		v, err := e.services.SyncService.ServerVersion(e.ctx)
		return serverStatusMsg{version: v, err: err}
	}
}

func (r rootModel) View() string {
	if r.showAbout {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverStatus))
	}

	view := r.pages[r.current].View()
	if r.pasteStatus != "" {
		view += "\n\n" + errorStyle.Render(r.pasteStatus)
	}
	return appStyle.Render(view)
}
