// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// call sends req and decodes the envelope data into T.
func call[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	resp, err := c.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if len(resp.Envelope.Data) == 0 {
		return out, nil
	}
	if err = json.Unmarshal(resp.Envelope.Data, &out); err != nil {
		return out, payloadError(req, resp, err)
	}
	return out, nil
}

// listQuery encodes list parameters. Empty values are omitted.
func listQuery(params models.ListParams) url.Values {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Order != "" {
		q.Set("order", params.Order)
	}
	for k, v := range params.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// dateQuery encodes the optional startDate and endDate parameters.
func dateQuery(r models.DateRange) url.Values {
	q := url.Values{}
	if s := r.StartString(); s != "" {
		q.Set("startDate", s)
	}
	if e := r.EndString(); e != "" {
		q.Set("endDate", e)
	}
	return q
}
