// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client. It is populated by merging values from a .env file,
// environment variables, command-line flags, an optional JSON file and
// finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, integrity and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and the PDF file directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address, timeouts and CORS origins.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds how the client reaches the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Dashboard holds view-state synchronizer behaviour.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the database connection settings. On the server this is a
	// PostgreSQL DSN, on the client the path of the SQLite file.
	DB DB `envPrefix:"DB_"`

	// Files holds where uploaded PDFs are kept.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey signs and verifies every JWT the server issues.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of access tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of refresh tokens.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// VerificationTokenDuration is the lifetime of email verification links.
	// Env: APP_VERIFICATION_TOKEN_DURATION
	VerificationTokenDuration time.Duration `env:"VERIFICATION_TOKEN_DURATION"`

	// HashKey is the HMAC key for request body integrity (HashSHA256 header).
	// Integrity checks are skipped when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// PublicURL is the externally reachable base URL used to build file links.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the browser origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the connection string or file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for uploaded documents.
type Files struct {
	// Dir is where uploaded PDFs are stored and served from.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// MaxUploadSize is the largest accepted upload in bytes.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds how the client reaches the server.
type Adapter struct {
	// HTTPAddress is the server base address ("host:port" or full URL).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionRefreshInterval is how often the client refreshes its session.
	// Env: WORKERS_SESSION_REFRESH_INTERVAL
	SessionRefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL"`
}

// Auto-select policies for [Dashboard.AutoSelect].
const (
	AutoSelectAlways  = "always"
	AutoSelectInitial = "initial"
	AutoSelectNever   = "never"
)

// Dashboard holds view-state synchronizer settings.
type Dashboard struct {
	// DefaultSemester is used when nothing has been persisted yet.
	// Env: DASHBOARD_DEFAULT_SEMESTER
	DefaultSemester string `env:"DEFAULT_SEMESTER"`

	// AutoSelect decides when the first subject of a loaded list is selected:
	// "always", "initial" (first load after sign-in only) or "never".
	// Env: DASHBOARD_AUTO_SELECT
	AutoSelect string `env:"AUTO_SELECT"`

	// RequestTimeout bounds every list/create call made by the dashboard.
	// Env: DASHBOARD_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// priority order (the first source that sets a field wins):
//  1. Environment variables (after loading the .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
