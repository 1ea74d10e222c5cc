// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/microcosm-cc/bluemonday"
)

type Handler struct {
	services *service.Services
	metrics  *httpMetrics

	// sanitizer strips markup from user supplied text fields.
	sanitizer *bluemonday.Policy

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		metrics:   newHTTPMetrics(),
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}
