// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	RecordService     RecordService
	StatisticsService StatisticsService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.RefreshTokenRepository, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, storages.RefreshTokenRepository, logger),
		RecordService:     NewRecordService(storages.RecordRepository, logger),
		StatisticsService: NewStatisticsService(storages.StatisticsRepository, logger),
		AppInfoService:    NewAppInfoService(build, logger),
	}
}
