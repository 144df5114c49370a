// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in. It returns tui.ErrUserQuit
	// when the user leaves instead.
	LoginFlow(ctx context.Context) error
	// MainLoop runs the signed-in screens. logout reports that the session
	// should be ended and the login flow shown again.
	MainLoop(ctx context.Context) (logout bool, err error)
}

// BackgroundWorkers are started once per process and stopped on exit.
type BackgroundWorkers interface {
	Run(ctx context.Context)
	Stop()
}
