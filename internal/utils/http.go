// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and the
// "application/json" content type. On a marshaling failure it answers 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes a successful {success, data, message} envelope.
func WriteData(w http.ResponseWriter, data any, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ResponseEnvelope[any]{Success: true, Data: data, Message: message}, statusCode)
}

// WriteFailure writes a failed envelope carrying message.
func WriteFailure(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ResponseEnvelope[any]{Success: false, Message: message}, statusCode)
}
