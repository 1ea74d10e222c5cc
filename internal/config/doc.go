// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the configuration of the
// inventory client and the reference API server.
//
// Configuration is assembled from several sources. For every field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// [GetClientConfig] and [GetServerConfig] project the merged
// [StructuredConfig] into validated, process specific views.
package config
