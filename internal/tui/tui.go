// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal user interface of the inventory client: a login
// screen, one paginated list per resource and the statistics screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	start    *query.MemoryLocation
	build    models.AppBuildInfo
	logger   *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

// New creates the UI. startLocation is an optional deep link such as
// "/projects?page=2" selecting the first list shown.
func New(services *service.ClientServices, startLocation string, build models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	t := &TUI{services: services, build: build, logger: log}

	if strings.TrimSpace(startLocation) != "" {
		start, err := query.ParseLocation(startLocation)
		if err != nil {
			return nil, fmt.Errorf("invalid start location: %w", err)
		}
		t.start = start
	}
	return t, nil
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
// signedIn selects the first screen.
func (t *TUI) Run(ctx context.Context, signedIn bool) error {
	tabs, active := newResourceTabs(t.services, t.start)
	defer func() {
		for _, tab := range tabs {
			tab.close()
		}
	}()

	model := newAppModel(ctx, modelConfig{
		auth:     t.services.AuthService,
		stats:    t.services.Statistics,
		tabs:     tabs,
		active:   active,
		signedIn: signedIn,
		copy:     clipboard.WriteAll,
		footer:   t.build.BuildVersion(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.setProgram(p)
	defer t.setProgram(nil)

	t.logger.Info().Bool("signed_in", signedIn).Msg("terminal ui started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	t.logger.Info().Msg("terminal ui stopped")
	return nil
}

// NotifyLogout tells a running UI that the session was cleared. A non-nil
// reason sends the user back to the login screen with an explanation.
func (t *TUI) NotifyLogout(reason error) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p == nil {
		return
	}
	go p.Send(sessionEndedMsg{reason: reason})
}

func (t *TUI) setProgram(p *tea.Program) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = p
}
