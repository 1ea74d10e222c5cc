// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// listParams reads page, limit, search, sort, order and the remaining
// filters from the query string. The client synchronizer uses the same
// defaults and clamps.
func listParams(r *http.Request) models.ListParams {
	return query.StateFromValues(r.URL.Query()).Params()
}

// dateRange reads the optional startDate and endDate parameters.
func dateRange(r *http.Request) (models.DateRange, error) {
	var dr models.DateRange
	q := r.URL.Query()

	for name, dst := range map[string]*time.Time{"startDate": &dr.Start, "endDate": &dr.End} {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		t, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: %s=%q", errInvalidDate, name, raw)
		}
		*dst = t
	}
	return dr, nil
}

// sanitize strips markup from s. Entities escaped by the policy are
// decoded again so that plain text such as "R&D" survives unchanged.
func (h *Handler) sanitize(s string) string {
	return html.UnescapeString(h.sanitizer.Sanitize(s))
}

// sanitizeDocument sanitizes the top level string values of doc in place.
func (h *Handler) sanitizeDocument(doc map[string]any) {
	for k, v := range doc {
		if s, ok := v.(string); ok {
			doc[k] = h.sanitize(s)
		}
	}
}
