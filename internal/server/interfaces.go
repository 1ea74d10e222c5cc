// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the API server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT and then
	// shuts down gracefully. It returns the error that stopped the listener
	// early, if any.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
