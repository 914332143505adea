// Package tui is the terminal front end of the QR forge client, built on
// bubbletea. A root model routes between pages: the main menu, one form per
// QR type, the result screen, history, templates and the about window.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/models"
)

// env is what every page needs to reach the services.
type env struct {
	ctx      context.Context
	services *service.ClientServices

	// owner is the device id local history is stored under.
	owner string

	// saveDir is where exported PNGs are written.
	saveDir string

	now    func() time.Time
	logger *logger.Logger
}

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	owner     string
	saveDir   string
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, owner, saveDir string, logger *logger.Logger) *TUI {
	if saveDir == "" {
		saveDir = "."
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		owner:     owner,
		saveDir:   saveDir,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(&env{
		ctx:      ctx,
		services: t.services,
		owner:    t.owner,
		saveDir:  t.saveDir,
		now:      time.Now,
		logger:   t.logger,
	}, t.buildInfo)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
