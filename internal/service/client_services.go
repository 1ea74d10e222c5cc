// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

const (
	clientsResource     = "clients"
	projectsResource    = "projects"
	tasksResource       = "tasks"
	techniciansResource = "technicians"
	usersResource       = "users"
	productsResource    = "products"
)

type ClientServices struct {
	AuthService ClientAuthService

	Clients     ClientResourceService[models.Client]
	Projects    ClientResourceService[models.Project]
	Tasks       ClientResourceService[models.Task]
	Technicians ClientResourceService[models.Technician]
	Users       ClientResourceService[models.User]
	Products    ClientProductService
	Statistics  ClientStatisticsService

	// Cache is shared by every list query and the statistics.
	Cache *cache.Cache
}

func NewClientServices(client *adapter.Client, sess SessionManager, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	c := cache.New(
		cache.WithRetryable(retryableFetch),
		cache.WithLogger(log),
	)
	opts := ResourceOptions{
		ListTTL:        cfg.Cache.ListTTL,
		SearchDebounce: cfg.SearchDebounce,
		Dependents:     []string{StatisticsPrefix},
	}

	return &ClientServices{
		AuthService: NewClientAuthService(adapter.NewAuth(client), sess, log),
		Clients:     NewClientResourceService[models.Client](clientsResource, adapter.NewClients(client), c, opts, log),
		Projects:    NewClientResourceService[models.Project](projectsResource, adapter.NewProjects(client), c, opts, log),
		Tasks:       NewClientResourceService[models.Task](tasksResource, adapter.NewTasks(client), c, opts, log),
		Technicians: NewClientResourceService[models.Technician](techniciansResource, adapter.NewTechnicians(client), c, opts, log),
		Users:       NewClientResourceService[models.User](usersResource, adapter.NewUsers(client), c, opts, log),
		Products:    NewClientProductService(adapter.NewProducts(client), c, opts, log),
		Statistics:  NewClientStatisticsService(adapter.NewStatistics(client), c, cfg.Cache.StatsTTL),
		Cache:       c,
	}
}
