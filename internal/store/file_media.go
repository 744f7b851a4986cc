// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cineview/cineview-server/internal/logger"
)

// mediaFileStorage is the local filesystem implementation of [MediaStorage].
// Paths are slash-separated and relative to baseDir, e.g.
// "review_photos/0190f3c2-....jpg"; the same relative path is what gets
// persisted in the database and appended to the public media URL.
type mediaFileStorage struct {
	baseDir string
	logger  *logger.Logger
}

// NewMediaFileStorage creates baseDir if needed and returns a [MediaStorage]
// rooted at it.
func NewMediaFileStorage(baseDir string, logger *logger.Logger) (MediaStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}

	logger.Debug().Str("dir", baseDir).Msg("creating media file storage")
	return &mediaFileStorage{baseDir: baseDir, logger: logger}, nil
}

// Save writes content to rel, creating parent directories. The file is
// written under a temporary name first and renamed into place, so readers
// never observe a partial file.
func (s *mediaFileStorage) Save(ctx context.Context, rel string, content io.Reader) error {
	log := logger.FromContext(ctx)

	full, err := s.resolve(rel)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create media subdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, content); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*mediaFileStorage.Save").Str("path", rel).Msg("failed to write media file")
		return fmt.Errorf("failed to write media file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close media file: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.Rename(tmp.Name(), full); err != nil {
		log.Err(err).Str("func", "*mediaFileStorage.Save").Str("path", rel).Msg("failed to move media file into place")
		return fmt.Errorf("failed to store media file: %w", err)
	}

	return nil
}

// Delete removes rel. A missing file is not an error.
func (s *mediaFileStorage) Delete(ctx context.Context, rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mediaFileStorage.Delete").
			Str("path", rel).
			Msg("failed to delete media file")
		return fmt.Errorf("failed to delete media file: %w", err)
	}

	return nil
}

func (s *mediaFileStorage) Exists(ctx context.Context, rel string) (bool, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat media file: %w", err)
	}
}

// resolve maps a relative media path to a filesystem path inside baseDir.
func (s *mediaFileStorage) resolve(rel string) (string, error) {
	if rel == "" || strings.HasPrefix(rel, "/") || strings.Contains(rel, `\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMediaPath, rel)
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidMediaPath, rel)
	}

	return filepath.Join(s.baseDir, filepath.FromSlash(clean)), nil
}
