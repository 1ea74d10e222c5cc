// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
)

const usersItemsKey = "users"

// userRoutes mounts /users. Reads are open to every signed-in user,
// mutations to administrators only.
func (h *Handler) userRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Get("/{id}", h.getUser)

	r.Group(func(r chi.Router) {
		r.Use(requireRole(models.RoleAdmin))
		r.Post("/", h.createUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.UserService.List(r.Context(), listParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, models.EncodeList(usersItemsKey, res.Items, res.Pagination), "", http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, user, "", http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeUserInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, user, app.MsgCreated, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeUserInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, user, app.MsgUpdated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if self, _ := utils.GetUserIDFromContext(r.Context()); self == id {
		utils.WriteFailure(w, app.MsgAccessDenied, http.StatusForbidden)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, map[string]string{"id": id}, app.MsgDeleted, http.StatusOK)
}

func (h *Handler) decodeUserInput(r *http.Request) (models.UserInput, error) {
	var in models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return models.UserInput{}, errInvalidJSON
	}
	in.Name = h.sanitize(in.Name)
	return in, nil
}
