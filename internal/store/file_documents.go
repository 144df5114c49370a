// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
)

// localFileStorage is the filesystem implementation of [FileStorage].
//
// Files are laid out as <root>/<ownerID>/<name>, so the relative path
// returned by Save doubles as the URL suffix under /files/.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage creates the root directory when missing and returns a
// [FileStorage] writing beneath it.
func NewLocalFileStorage(cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("%w: empty storage directory", ErrInvalidFile)
	}

	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving storage directory: %w", err)
	}

	if err = os.MkdirAll(root, 0o755); err != nil {
		logger.Err(err).Str("func", "NewLocalFileStorage").Str("dir", root).Msg("error creating storage directory")
		return nil, fmt.Errorf("error creating storage directory: %w", err)
	}

	return &localFileStorage{root: root, logger: logger}, nil
}

// Save writes content atomically: it goes to a temporary file first and is
// renamed into place once fully written.
func (l *localFileStorage) Save(ctx context.Context, ownerID int64, name string, content []byte) (string, error) {
	log := logger.FromContext(ctx)

	if ownerID <= 0 || !safeFileName(name) {
		return "", fmt.Errorf("%w: owner=%d name=%q", ErrInvalidFile, ownerID, name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	owner := strconv.FormatInt(ownerID, 10)
	dir := filepath.Join(l.root, owner)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Str("dir", dir).Msg("error creating owner directory")
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "localFileStorage.Save").Msg("error writing file")
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Msg("error moving file into place")
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return path.Join(owner, name), nil
}

func (l *localFileStorage) Root() string {
	return l.root
}

func safeFileName(name string) bool {
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
