// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_CreateIsReplayedAfterRefresh(t *testing.T) {
	image := []byte("\x89PNG fake image bytes")
	var uploads atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == refreshPath {
			writeJSON(w, http.StatusOK, refreshOK("access-2", "refresh-2"))
			return
		}

		assert.Equal(t, "/products", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Drill", r.FormValue("name"))
		assert.Equal(t, "3", r.FormValue("quantity"))
		assert.Equal(t, "19.99", r.FormValue("price"))
		assert.Equal(t, "u7", r.FormValue("managerId"))

		f, header, err := r.FormFile(productImageParam)
		if assert.NoError(t, err) {
			defer f.Close()
			got, _ := io.ReadAll(f)
			assert.Equal(t, image, got, "file part must be resent in full")
			assert.Equal(t, "drill.png", header.Filename)
		}

		if uploads.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusCreated, ok(models.Product{ID: "pr1", Name: "Drill", Quantity: 3, Price: 19.99}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newTestSession(t, "access-1", "refresh-1"))
	product, err := NewProducts(c).CreateProduct(context.Background(), models.ProductForm{
		Name:      "Drill",
		Quantity:  3,
		Price:     19.99,
		ManagerID: "u7",
		Image:     &models.FilePart{FileName: "drill.png", ContentType: "image/png", Content: image},
	})
	require.NoError(t, err)
	assert.Equal(t, "pr1", product.ID)
	assert.Equal(t, int32(2), uploads.Load())
}

func TestProducts_UpdateWithoutImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/pr1", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Drill XL", r.FormValue("name"))
		assert.Empty(t, r.MultipartForm.File)
		writeJSON(w, http.StatusOK, ok(models.Product{ID: "pr1", Name: "Drill XL"}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newTestSession(t, "a", "r"))
	product, err := NewProducts(c).UpdateProduct(context.Background(), "pr1", models.ProductForm{Name: "Drill XL"})
	require.NoError(t, err)
	assert.Equal(t, "Drill XL", product.Name)
}
