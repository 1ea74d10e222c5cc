// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// productImageParam is the multipart field carrying the product image.
const productImageParam = "image"

// Products is the products resource. Create and update are sent as
// multipart/form-data.
type Products struct {
	*Resource[models.Product]
}

func NewProducts(c *Client) *Products {
	return &Products{Resource: NewResource[models.Product](c, "/products", "products")}
}

// CreateProduct posts form to /products as multipart/form-data.
func (p *Products) CreateProduct(ctx context.Context, form models.ProductForm) (models.Product, error) {
	fields, files := productForm(form)
	req := NewRequest(http.MethodPost, p.path).WithForm(fields, files...)
	return call[models.Product](ctx, p.client, req)
}

// UpdateProduct puts form to /products/:id as multipart/form-data.
func (p *Products) UpdateProduct(ctx context.Context, id string, form models.ProductForm) (models.Product, error) {
	fields, files := productForm(form)
	req := NewRequest(http.MethodPut, p.itemPath(id)).WithForm(fields, files...)
	return call[models.Product](ctx, p.client, req)
}

func productForm(form models.ProductForm) (map[string]string, []FormFile) {
	fields := map[string]string{
		"name":     form.Name,
		"quantity": strconv.Itoa(form.Quantity),
		"price":    strconv.FormatFloat(form.Price, 'f', -1, 64),
	}
	if form.SKU != "" {
		fields["sku"] = form.SKU
	}
	if form.Description != "" {
		fields["description"] = form.Description
	}
	if form.ManagerID != "" {
		fields["managerId"] = form.ManagerID
	}

	var files []FormFile
	if form.Image != nil {
		files = append(files, FormFile{Param: productImageParam, FilePart: *form.Image})
	}
	return fields, files
}
