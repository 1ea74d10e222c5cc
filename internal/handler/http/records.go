// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
)

// recordRoutes mounts the JSON CRUD routes of kind on r.
func (h *Handler) recordRoutes(r chi.Router, kind models.RecordKind) {
	r.Get("/", h.listRecords(kind))
	r.Post("/", h.createRecord(kind))
	r.Get("/{id}", h.getRecord(kind))
	r.Put("/{id}", h.updateRecord(kind))
	r.Delete("/{id}", h.deleteRecord(kind))
}

func (h *Handler) listRecords(kind models.RecordKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.services.RecordService.List(r.Context(), kind, listParams(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteData(w, models.EncodeList(string(kind), res.Items, res.Pagination), "", http.StatusOK)
	}
}

func (h *Handler) getRecord(kind models.RecordKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.services.RecordService.Get(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteData(w, doc, "", http.StatusOK)
	}
}

func (h *Handler) createRecord(kind models.RecordKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.decodeDocument(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.saveRecord(w, r, kind, "", doc)
	}
}

func (h *Handler) updateRecord(kind models.RecordKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.decodeDocument(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.saveRecord(w, r, kind, chi.URLParam(r, "id"), doc)
	}
}

func (h *Handler) deleteRecord(kind models.RecordKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := h.services.RecordService.Delete(r.Context(), kind, id); err != nil {
			writeError(w, r, err)
			return
		}
		logger.FromRequest(r).Debug().Str("kind", string(kind)).Str("id", id).Msg("record deleted")
		utils.WriteData(w, map[string]string{"id": id}, app.MsgDeleted, http.StatusOK)
	}
}

// saveRecord creates doc when id is empty and updates the record otherwise.
func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request, kind models.RecordKind, id string, doc map[string]any) {
	var (
		saved  map[string]any
		err    error
		status = http.StatusOK
		msg    = app.MsgUpdated
	)
	if id == "" {
		saved, err = h.services.RecordService.Create(r.Context(), kind, doc)
		status, msg = http.StatusCreated, app.MsgCreated
	} else {
		saved, err = h.services.RecordService.Update(r.Context(), kind, id, doc)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, saved, msg, status)
}

// decodeDocument reads a JSON object body and sanitizes its text fields.
func (h *Handler) decodeDocument(r *http.Request) (map[string]any, error) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc == nil {
		return nil, errInvalidJSON
	}
	h.sanitizeDocument(doc)
	return doc, nil
}
