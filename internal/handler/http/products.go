// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	// maxProductBodySize bounds the whole multipart body.
	maxProductBodySize = 4 << 20
	// maxProductFormMemory is kept in memory, the rest spills to disk.
	maxProductFormMemory = 2 << 20
	// maxProductImageSize bounds the image stored inline as a data URL.
	maxProductImageSize = 1 << 20

	productImageField = "image"
)

// productTextFields are copied from the form as sanitized strings.
var productTextFields = []string{"name", "sku", "description", "managerId"}

// productRoutes mounts /products. Create and update accept
// multipart/form-data as well as JSON; reads share the record handlers.
func (h *Handler) productRoutes(r chi.Router) {
	r.Get("/", h.listRecords(models.KindProduct))
	r.Post("/", h.createProduct)
	r.Get("/{id}", h.getRecord(models.KindProduct))
	r.Put("/{id}", h.updateProduct)
	r.Delete("/{id}", h.deleteRecord(models.KindProduct))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	doc, err := h.decodeProduct(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if manager, _ := doc["managerId"].(string); manager == "" {
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			doc["managerId"] = userID
		}
	}
	h.saveRecord(w, r, models.KindProduct, "", doc)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	doc, err := h.decodeProduct(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.saveRecord(w, r, models.KindProduct, chi.URLParam(r, "id"), doc)
}

// decodeProduct reads a product body. Only the fields present in a
// multipart form are set, so an update without an image keeps the stored one.
func (h *Handler) decodeProduct(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return h.decodeDocument(r)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxProductBodySize)
	if err := r.ParseMultipartForm(maxProductFormMemory); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidForm, err)
	}
	defer r.MultipartForm.RemoveAll()

	doc := map[string]any{}
	for _, field := range productTextFields {
		if v, ok := formValue(r, field); ok {
			doc[field] = h.sanitize(v)
		}
	}

	if v, ok := formValue(r, "quantity"); ok {
		quantity, err := strconv.Atoi(v)
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("%w: quantity %q", errInvalidForm, v)
		}
		doc["quantity"] = quantity
	}
	if v, ok := formValue(r, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("%w: price %q", errInvalidForm, v)
		}
		doc["price"] = price
	}

	image, err := readImage(r)
	if err != nil {
		return nil, err
	}
	if image != "" {
		doc["imageUrl"] = image
	}
	return doc, nil
}

// formValue returns the trimmed first value of a multipart field and
// whether the field was sent at all.
func formValue(r *http.Request, field string) (string, bool) {
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[0]), true
}

// readImage returns the uploaded image as a data URL, or "" when no image
// was sent.
func readImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile(productImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidForm, err)
	}
	defer file.Close()

	if header.Size > maxProductImageSize {
		return "", errImageTooLarge
	}
	content, err := io.ReadAll(io.LimitReader(file, maxProductImageSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidForm, err)
	}
	if len(content) > maxProductImageSize {
		return "", errImageTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s is not an image", errInvalidForm, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}
