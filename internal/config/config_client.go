package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs request bodies sent to the server; empty disables signing.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// SessionRefreshInterval defines how often the session is refreshed.
	SessionRefreshInterval time.Duration
}

// ClientDashboard configures the view-state synchronizer.
type ClientDashboard struct {
	DefaultSemester string
	AutoSelect      string
	RequestTimeout  time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Workers   ClientWorkers
	Dashboard ClientDashboard
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps only the fields relevant to the client runtime.
// The client keeps its own SQLite file, so a missing DSN falls back to a
// file in the working directory rather than the server's PostgreSQL DSN.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = defaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{
			SessionRefreshInterval: cfg.Workers.SessionRefreshInterval,
		},
		Dashboard: ClientDashboard{
			DefaultSemester: cfg.Dashboard.DefaultSemester,
			AutoSelect:      cfg.Dashboard.AutoSelect,
			RequestTimeout:  cfg.Dashboard.RequestTimeout,
		},
	}
}
