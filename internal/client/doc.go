// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services and the background session
// refresh into a single process lifecycle: restore the saved session, sign in
// when there is none, run the dashboard, and go back to sign-in on logout.
package client
