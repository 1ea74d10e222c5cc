// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"maps"
	"net/url"
	"slices"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Request describes one API call. It is a value: every With* method returns
// a modified copy and leaves the receiver untouched.
type Request struct {
	method string
	path   string
	query  url.Values
	body   any
	form   map[string]string
	files  []FormFile

	skipAuth bool
	retried  bool
}

// FormFile is a file part of a multipart request.
type FormFile struct {
	Param string
	models.FilePart
}

// NewRequest returns a request for method and a path relative to the API
// base URL.
func NewRequest(method, path string) Request {
	return Request{method: method, path: path}
}

func (r Request) Method() string { return r.method }
func (r Request) Path() string   { return r.path }

// Retried reports whether the request is the resend after a token refresh.
func (r Request) Retried() bool { return r.retried }

// SkipsAuth reports whether the bearer token is left off.
func (r Request) SkipsAuth() bool { return r.skipAuth }

// Query returns a copy of the query parameters.
func (r Request) Query() url.Values {
	return cloneValues(r.query)
}

// WithQuery returns a copy of r with the query parameters replaced by q.
func (r Request) WithQuery(q url.Values) Request {
	r.query = cloneValues(q)
	return r
}

// WithBody returns a copy of r sending body as JSON.
func (r Request) WithBody(body any) Request {
	r.body = body
	r.form = nil
	r.files = nil
	return r
}

// WithForm returns a copy of r sending fields and files as
// multipart/form-data.
func (r Request) WithForm(fields map[string]string, files ...FormFile) Request {
	r.body = nil
	r.form = maps.Clone(fields)
	r.files = slices.Clone(files)
	return r
}

// WithoutAuth returns a copy of r that is sent without a bearer token and
// never triggers a token refresh.
func (r Request) WithoutAuth() Request {
	r.skipAuth = true
	return r
}

// retry returns a copy of r marked as already retried.
func (r Request) retry() Request {
	r.retried = true
	return r
}

func (r Request) multipart() bool {
	return r.form != nil || len(r.files) > 0
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = slices.Clone(vs)
	}
	return out
}
