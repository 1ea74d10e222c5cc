// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope is the JSON body shape shared by every API endpoint:
// {success, data, message}. A false Success is a logical failure even on a
// 2xx status.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ResponseEnvelope is the typed form of [Envelope] used by the API server
// when writing responses.
type ResponseEnvelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListPayload is the "data" object of a list response. The item array is
// published under the resource name ("projects", "users", ...), so it is kept
// raw until the resource is known.
type ListPayload map[string]json.RawMessage

// PaginationKey is the key of the pagination block inside [ListPayload].
const PaginationKey = "pagination"

// DecodeList extracts the item array stored under itemsKey and the pagination
// block from a list payload.
func DecodeList[T any](data json.RawMessage, itemsKey string) (ListResult[T], error) {
	var payload ListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ListResult[T]{}, err
	}

	result := ListResult[T]{Items: []T{}}
	if raw, ok := payload[itemsKey]; ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &result.Items); err != nil {
			return ListResult[T]{}, err
		}
	}
	if raw, ok := payload[PaginationKey]; ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &result.Pagination); err != nil {
			return ListResult[T]{}, err
		}
	}
	return result, nil
}

// EncodeList builds the list payload the server answers with.
func EncodeList[T any](itemsKey string, items []T, pagination Pagination) map[string]any {
	if items == nil {
		items = []T{}
	}
	return map[string]any{
		itemsKey:      items,
		PaginationKey: pagination,
	}
}
