// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/session"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/tui"
	"github.com/MKhiriev/go-inventory-keeper/internal/workers"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type App struct {
	storage  io.Closer
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens the local storage and builds the client stack described by
// cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess := session.NewStore(storages.SessionStorage, log)

	apiClient, err := adapter.NewClient(cfg.Adapter, sess, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	services := service.NewClientServices(apiClient, sess, cfg, log)

	ui, err := tui.New(services, cfg.StartLocation, build, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create terminal ui: %w", err)
	}

	janitor := workers.NewCacheJanitor(services.Cache, cfg.Cache.SweepInterval, cfg.Cache.Retention, log)

	return newApp(storages, sess, services, ui, workers.NewWorkers(janitor), log), nil
}

func newApp(storage io.Closer, sess *session.Store, services *service.ClientServices, ui UI, w *workers.Workers, log *logger.Logger) *App {
	a := &App{storage: storage, services: services, ui: ui, workers: w, logger: log}

	// Nothing cached for one user may be shown to the next.
	sess.OnLogout(func(reason error) {
		a.services.Cache.Clear()
		a.ui.NotifyLogout(reason)
	})
	return a
}

// Run restores the previous session, starts the background workers and shows
// the UI until the user quits or the process is interrupted.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	signedIn, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not restore session, signing in again")
		signedIn = false
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.ui.Run(ctx, signedIn)
}

func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}
