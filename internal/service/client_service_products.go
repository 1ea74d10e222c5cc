// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type clientProductService struct {
	*clientResourceService[models.Product]
	api adapter.ProductAPI
}

func NewClientProductService(api adapter.ProductAPI, c *cache.Cache, opts ResourceOptions, log *logger.Logger) ClientProductService {
	return &clientProductService{
		clientResourceService: newClientResourceService[models.Product](productsResource, api, c, opts, log),
		api:                   api,
	}
}

func (s *clientProductService) CreateProduct(ctx context.Context, form models.ProductForm) (models.Product, error) {
	p, err := s.api.CreateProduct(ctx, form)
	if err != nil {
		return p, mapAdapterError(err)
	}
	s.invalidate()
	return p, nil
}

func (s *clientProductService) UpdateProduct(ctx context.Context, id string, form models.ProductForm) (models.Product, error) {
	p, err := s.api.UpdateProduct(ctx, id, form)
	if err != nil {
		return p, mapAdapterError(err)
	}
	s.invalidate()
	return p, nil
}
