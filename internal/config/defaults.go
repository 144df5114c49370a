package config

import "time"

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultPublicURL        = "http://localhost:8080"
	defaultTokenIssuer      = "study-shelf"
	defaultFilesDir         = "data/files"
	defaultMaxUploadSize    = 20 << 20
	defaultClientDSN        = "study-shelf.db"
	defaultDashboardTimeout = 10 * time.Second
)

// defaultConfig is merged last, so it only fills what no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:               defaultTokenIssuer,
			TokenDuration:             15 * time.Minute,
			RefreshTokenDuration:      30 * 24 * time.Hour,
			VerificationTokenDuration: 24 * time.Hour,
			Version:                   "dev",
			PublicURL:                 defaultPublicURL,
		},
		Storage: Storage{
			Files: Files{
				Dir:           defaultFilesDir,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SessionRefreshInterval: 5 * time.Minute,
		},
		Dashboard: Dashboard{
			DefaultSemester: "1",
			AutoSelect:      AutoSelectAlways,
			RequestTimeout:  defaultDashboardTimeout,
		},
	}
}
