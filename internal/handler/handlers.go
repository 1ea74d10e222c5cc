// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the API server.
package handler

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/handler/http"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
