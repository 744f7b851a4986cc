// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/storage/"},
		{"/", "/storage/"},
		{"/storage/", "/storage/"},
		{"/storage", "/storage/"},
		{"files", "/files/"},
		{"/media/uploads/", "/media/uploads/"},
		{"https://cdn.example.com/media/", "/media/"},
		{"https://cdn.example.com", "/storage/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, publicPath(tt.in))
		})
	}
}

func TestMediaFiles(t *testing.T) {
	h, _ := newTestHandler(t)

	require.NoError(t, os.MkdirAll(filepath.Join(h.mediaDir, "review_photos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(h.mediaDir, "review_photos", "a.png"), []byte("png-bytes"), 0o644))

	router := h.Init()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "stored file", path: "/storage/review_photos/a.png", wantStatus: http.StatusOK, wantBody: "png-bytes"},
		{name: "missing file", path: "/storage/review_photos/b.png", wantStatus: http.StatusNotFound},
		{name: "directory listing hidden", path: "/storage/review_photos/", wantStatus: http.StatusNotFound},
		{name: "root listing hidden", path: "/storage/", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			res := rr.Result()
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(res.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestMediaFiles_TraversalStaysInsideMediaDir(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/storage/../handler_test.go", nil))

	assert.NotEqual(t, http.StatusOK, rr.Code)
}

func TestMediaFiles_WrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/storage/review_photos/a.png", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
