// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var (
	nameColumn    = column{title: "Name", field: "name", width: 24}
	emailColumn   = column{title: "Email", field: "email", width: 24}
	createdColumn = column{title: "Created", field: "createdAt", width: 10}
	statusColumn  = column{title: "Status", field: "status", width: 11}
)

// newResourceTabs returns the list tabs in display order and the index of the
// tab whose path matches start. start seeds the query of that tab.
func newResourceTabs(s *service.ClientServices, start *query.MemoryLocation) ([]resourceTab, int) {
	active := 0
	locate := func(i int, resource string) query.Location {
		if start != nil && start.Path() == "/"+resource {
			active = i
			return start
		}
		return query.NewLocation(resource)
	}

	tabs := []resourceTab{
		&listTab[models.Client]{
			resource: s.Clients.Name(),
			label:    "Clients",
			cols: []column{
				nameColumn, emailColumn,
				{title: "Phone", field: "phone", width: 14},
				{title: "Company", field: "company", width: 18},
				createdColumn,
			},
			query: s.Clients.Query(locate(0, s.Clients.Name())),
			del:   s.Clients.Delete,
			row: func(c models.Client) (string, []string) {
				return c.ID, []string{c.Name, c.Email, c.Phone, c.Company, formatDate(c.CreatedAt)}
			},
		},
		&listTab[models.Project]{
			resource: s.Projects.Name(),
			label:    "Projects",
			cols: []column{
				nameColumn, statusColumn,
				{title: "Budget", field: "budget", width: 12},
				{title: "Start", field: "startDate", width: 10},
				{title: "End", field: "endDate", width: 10},
			},
			query: s.Projects.Query(locate(1, s.Projects.Name())),
			del:   s.Projects.Delete,
			row: func(p models.Project) (string, []string) {
				return p.ID, []string{p.Name, string(p.Status), formatMoney(p.Budget), formatDatePtr(p.StartDate), formatDatePtr(p.EndDate)}
			},
		},
		&listTab[models.Task]{
			resource: s.Tasks.Name(),
			label:    "Tasks",
			cols: []column{
				nameColumn, statusColumn,
				{title: "Due", field: "dueDate", width: 10},
				createdColumn,
			},
			query: s.Tasks.Query(locate(2, s.Tasks.Name())),
			del:   s.Tasks.Delete,
			row: func(t models.Task) (string, []string) {
				return t.ID, []string{t.Name, string(t.Status), formatDatePtr(t.DueDate), formatDate(t.CreatedAt)}
			},
		},
		&listTab[models.Technician]{
			resource: s.Technicians.Name(),
			label:    "Technicians",
			cols: []column{
				nameColumn, emailColumn,
				{title: "Specialty", field: "specialty", width: 18},
				createdColumn,
			},
			query: s.Technicians.Query(locate(3, s.Technicians.Name())),
			del:   s.Technicians.Delete,
			row: func(t models.Technician) (string, []string) {
				return t.ID, []string{t.Name, t.Email, t.Specialty, formatDate(t.CreatedAt)}
			},
		},
		&listTab[models.Product]{
			resource: s.Products.Name(),
			label:    "Products",
			cols: []column{
				nameColumn,
				{title: "SKU", field: "sku", width: 12},
				{title: "Qty", field: "quantity", width: 6},
				{title: "Price", field: "price", width: 10},
				createdColumn,
			},
			query: s.Products.Query(locate(4, s.Products.Name())),
			del:   s.Products.Delete,
			row: func(p models.Product) (string, []string) {
				return p.ID, []string{p.Name, p.SKU, strconv.Itoa(p.Quantity), formatMoney(p.Price), formatDate(p.CreatedAt)}
			},
		},
		&listTab[models.User]{
			resource: s.Users.Name(),
			label:    "Users",
			cols: []column{
				nameColumn, emailColumn,
				{title: "Role", field: "role", width: 10},
				{title: "Active", field: "isActive", width: 6},
				createdColumn,
			},
			query: s.Users.Query(locate(5, s.Users.Name())),
			del:   s.Users.Delete,
			row: func(u models.User) (string, []string) {
				return u.ID, []string{u.Name, u.Email, string(u.Role), formatBool(u.IsActive), formatDate(u.CreatedAt)}
			},
		},
	}
	return tabs, active
}
