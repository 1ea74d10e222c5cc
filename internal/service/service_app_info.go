// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type appInfoService struct {
	build models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		build:  build,
		logger: logger,
	}
}

func (s *appInfoService) Version(ctx context.Context) models.VersionInfo {
	return s.build.VersionInfo()
}
