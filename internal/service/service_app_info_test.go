package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    string
		wantErr error
	}{
		{
			name:  "linker version wins over config",
			cfg:   config.App{Version: "dev"},
			build: models.NewAppBuildInfo("v1.4.0", "2026-10-01", "9f1c2e7"),
			want:  "v1.4.0",
		},
		{
			name:  "config version when binary has no build info",
			cfg:   config.App{Version: "1.0.0"},
			build: models.NewAppBuildInfo("", "", ""),
			want:  "1.0.0",
		},
		{
			name:  "config version is trimmed",
			cfg:   config.App{Version: "  2.0.0-rc1\n"},
			build: models.AppBuildInfo{},
			want:  "2.0.0-rc1",
		},
		{
			name:  "blank linker version falls back to config",
			cfg:   config.App{Version: "dev"},
			build: models.NewAppBuildInfo("   ", "2026-10-01", ""),
			want:  "dev",
		},
		{
			name:    "no version anywhere",
			cfg:     config.App{Version: " "},
			build:   models.NewAppBuildInfo("", "", ""),
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// версия известна с момента запуска, контекст не нужен
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
