// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// recordKinds are served as plain JSON CRUD resources.
var recordKinds = []models.RecordKind{
	models.KindClient,
	models.KindProject,
	models.KindTask,
	models.KindTechnician,
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh-token", h.refreshToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)
		for _, kind := range recordKinds {
			r.Route("/"+string(kind), func(r chi.Router) {
				h.recordRoutes(r, kind)
			})
		}
		r.Route("/products", h.productRoutes)
		r.Route("/users", h.userRoutes)
		r.Route("/statistics", h.statisticsRoutes)
	})

	// unknown routes and unsupported methods are both answered with 404
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteFailure(w, app.MsgDataNotFound, http.StatusNotFound)
}
