// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RecordKind names the resource a server-side [Record] belongs to.
type RecordKind string

const (
	KindClient     RecordKind = "clients"
	KindProject    RecordKind = "projects"
	KindTask       RecordKind = "tasks"
	KindTechnician RecordKind = "technicians"
	KindProduct    RecordKind = "products"
)

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool {
	switch k {
	case KindClient, KindProject, KindTask, KindTechnician, KindProduct:
		return true
	default:
		return false
	}
}

// Record is the storage form of every CRUD resource on the API server. The
// resource specific fields live in Attributes as a JSON object.
type Record struct {
	ID         string
	Kind       RecordKind
	Name       string
	Attributes json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Document flattens the record into the JSON object served to clients:
// the attributes plus id, name, createdAt and updatedAt.
func (r Record) Document() (map[string]any, error) {
	doc := map[string]any{}
	if len(r.Attributes) > 0 {
		if err := json.Unmarshal(r.Attributes, &doc); err != nil {
			return nil, err
		}
	}
	doc["id"] = r.ID
	doc["name"] = r.Name
	doc["createdAt"] = r.CreatedAt
	doc["updatedAt"] = r.UpdatedAt
	return doc, nil
}

// RecordFromDocument splits a client supplied JSON object into the record
// name and its attributes. Server managed fields are dropped.
func RecordFromDocument(kind RecordKind, doc map[string]any) (Record, error) {
	rec := Record{Kind: kind}
	if name, ok := doc["name"].(string); ok {
		rec.Name = name
	}
	attrs := make(map[string]any, len(doc))
	for k, v := range doc {
		switch k {
		case "id", "name", "createdAt", "updatedAt":
			continue
		}
		attrs[k] = v
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return Record{}, err
	}
	rec.Attributes = raw
	return rec, nil
}
