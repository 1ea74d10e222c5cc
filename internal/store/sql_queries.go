// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	tableUsers         = "users"
	tableRecords       = "records"
	tableRefreshTokens = "refresh_tokens"
)

var (
	userColumns         = []string{"id", "name", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}
	recordColumns       = []string{"id", "kind", "name", "attributes", "created_at", "updated_at"}
	refreshTokenColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at"}
)

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"isActive":  "is_active",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var recordSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// numericAttributes are sorted as numbers instead of text.
var numericAttributes = map[string]bool{
	"budget":   true,
	"price":    true,
	"quantity": true,
}

var attributeKey = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,63}$`)

// orderBy returns a whitelisted ORDER BY clause. Unknown fields sort by
// created_at, unknown directions by desc. id breaks ties so pages are stable.
func orderBy(columns map[string]string, attributes bool, sort, order string) string {
	col, ok := columns[sort]
	if !ok {
		switch {
		case attributes && attributeKey.MatchString(sort) && numericAttributes[sort]:
			col = fmt.Sprintf("(attributes->>'%s')::numeric", sort)
		case attributes && attributeKey.MatchString(sort):
			col = fmt.Sprintf("attributes->>'%s'", sort)
		default:
			col = "created_at"
		}
	}

	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return col + " " + dir + " NULLS LAST, id " + dir
}

// searchPattern escapes LIKE wildcards in term.
func searchPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + r.Replace(term) + "%"
}

// userFilters returns the WHERE clause of a users list request.
func userFilters(params models.ListParams) sq.And {
	where := sq.And{}
	if params.Search != "" {
		p := searchPattern(params.Search)
		where = append(where, sq.Or{sq.ILike{"name": p}, sq.ILike{"email": p}})
	}
	if role := params.Filters["role"]; role != "" {
		where = append(where, sq.Eq{"role": role})
	}
	switch params.Filters["isActive"] {
	case "true":
		where = append(where, sq.Eq{"is_active": true})
	case "false":
		where = append(where, sq.Eq{"is_active": false})
	}
	return where
}

// recordFilters returns the WHERE clause of a records list request. Extra
// filters match attributes by equality.
func recordFilters(kind models.RecordKind, params models.ListParams) sq.And {
	where := sq.And{sq.Eq{"kind": string(kind)}}
	if params.Search != "" {
		where = append(where, sq.ILike{"name": searchPattern(params.Search)})
	}
	for _, key := range slices.Sorted(maps.Keys(params.Filters)) {
		value := params.Filters[key]
		if !attributeKey.MatchString(key) || value == "" {
			continue
		}
		where = append(where, sq.Expr("attributes->>? = ?", key, value))
	}
	return where
}

// dateRange returns the created_at bounds of a statistics request. The end
// date is inclusive.
func dateRange(column string, r models.DateRange) sq.And {
	where := sq.And{}
	if !r.Start.IsZero() {
		where = append(where, sq.GtOrEq{column: r.Start})
	}
	if !r.End.IsZero() {
		where = append(where, sq.Lt{column: r.End.AddDate(0, 0, 1)})
	}
	return where
}
