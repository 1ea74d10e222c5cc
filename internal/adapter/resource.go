// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Resource is the CRUD client of one list resource such as /projects.
type Resource[T any] struct {
	client *Client
	path   string
	// itemsKey names the item array inside the list payload.
	itemsKey string
}

func NewResource[T any](c *Client, path, itemsKey string) *Resource[T] {
	return &Resource[T]{client: c, path: path, itemsKey: itemsKey}
}

func NewClients(c *Client) *Resource[models.Client] {
	return NewResource[models.Client](c, "/clients", "clients")
}

func NewProjects(c *Client) *Resource[models.Project] {
	return NewResource[models.Project](c, "/projects", "projects")
}

func NewTasks(c *Client) *Resource[models.Task] {
	return NewResource[models.Task](c, "/tasks", "tasks")
}

func NewTechnicians(c *Client) *Resource[models.Technician] {
	return NewResource[models.Technician](c, "/technicians", "technicians")
}

// NewUsers returns the users resource. Its list accepts the role and
// isActive filters.
func NewUsers(c *Client) *Resource[models.User] {
	return NewResource[models.User](c, "/users", "users")
}

// Path returns the resource path, e.g. "/projects".
func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) List(ctx context.Context, params models.ListParams) (models.ListResult[T], error) {
	req := NewRequest(http.MethodGet, r.path).WithQuery(listQuery(params))

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		return models.ListResult[T]{}, err
	}

	result, err := models.DecodeList[T](resp.Envelope.Data, r.itemsKey)
	if err != nil {
		return models.ListResult[T]{}, payloadError(req, resp, err)
	}
	return result, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	return call[T](ctx, r.client, NewRequest(http.MethodGet, r.itemPath(id)))
}

func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	return call[T](ctx, r.client, NewRequest(http.MethodPost, r.path).WithBody(item))
}

func (r *Resource[T]) Update(ctx context.Context, id string, item T) (T, error) {
	return call[T](ctx, r.client, NewRequest(http.MethodPut, r.itemPath(id)).WithBody(item))
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, NewRequest(http.MethodDelete, r.itemPath(id)))
	return err
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
