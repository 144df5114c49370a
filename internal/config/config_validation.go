// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-shelf/models"
)

// validate checks values whose format is wrong regardless of which binary
// reads the config. Required-ness is checked by the narrower validators.
func (cfg *StructuredConfig) validate() error {
	return cfg.Dashboard.validate()
}

// ValidateServer checks everything the server needs to start.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.TokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 ||
		cfg.App.VerificationTokenDuration <= 0 || cfg.App.PublicURL == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.Dir == "" || cfg.Storage.Files.MaxUploadSize <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Dashboard.DefaultSemester == "" || cfg.Dashboard.AutoSelect == "" || cfg.Dashboard.RequestTimeout <= 0 {
		return ErrInvalidDashboardConfigs
	}

	return Dashboard(cfg.Dashboard).validate()
}

func (d Dashboard) validate() error {
	if d.DefaultSemester != "" && !models.IsValidSemester(d.DefaultSemester) {
		return fmt.Errorf("%w: unknown semester %q", ErrInvalidDashboardConfigs, d.DefaultSemester)
	}

	switch d.AutoSelect {
	case "", AutoSelectAlways, AutoSelectInitial, AutoSelectNever:
	default:
		return fmt.Errorf("%w: unknown auto-select policy %q", ErrInvalidDashboardConfigs, d.AutoSelect)
	}

	return nil
}
