// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) statisticsRoutes(r chi.Router) {
	r.Get("/project-completion", statistic(func(ctx context.Context, dr models.DateRange) (models.ProjectCompletion, error) {
		return h.services.StatisticsService.ProjectCompletion(ctx, dr)
	}))
	r.Get("/users", statistic(func(ctx context.Context, dr models.DateRange) (models.UserStats, error) {
		return h.services.StatisticsService.Users(ctx, dr)
	}))
	r.Get("/incomplete-projects", statistic(func(ctx context.Context, dr models.DateRange) (models.IncompleteProjects, error) {
		return h.services.StatisticsService.IncompleteProjects(ctx, dr)
	}))
	r.Get("/product-manager", statistic(func(ctx context.Context, dr models.DateRange) (models.ProductManagerStats, error) {
		return h.services.StatisticsService.ProductManager(ctx, dr)
	}))
}

// statistic adapts a statistics query to a handler reading the
// startDate/endDate parameters.
func statistic[T any](fetch func(ctx context.Context, r models.DateRange) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRange(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		res, err := fetch(r.Context(), dr)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteData(w, res, "", http.StatusOK)
	}
}
