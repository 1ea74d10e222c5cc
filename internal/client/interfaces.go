// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error

	// Close releases the local storage.
	Close() error
}

// UI is the interactive front end driven by the application.
type UI interface {
	// Run blocks until the user quits. signedIn selects the first screen.
	Run(ctx context.Context, signedIn bool) error

	// NotifyLogout is called after the session was cleared.
	NotifyLogout(reason error)
}
