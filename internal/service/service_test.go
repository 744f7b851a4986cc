// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/stretchr/testify/require"
)

const (
	testDefaultPhoto = "https://example.com/default.png"
	testMaxUpload    = 64 << 10
)

var (
	errStorage = errors.New("storage error")
	fixedNow   = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func newTestMediaService(storage store.MediaStorage) *mediaService {
	return NewMediaService(storage,
		config.Files{PublicURL: "/storage", MaxUploadSize: testMaxUpload},
		config.App{DefaultProfilePhotoURL: testDefaultPhoto},
		logger.Nop(),
	).(*mediaService)
}

func encodeImage(t *testing.T, format string) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	case "gif":
		require.NoError(t, gif.Encode(&buf, img, nil))
	default:
		t.Fatalf("unknown format %q", format)
	}
	return buf.Bytes()
}
