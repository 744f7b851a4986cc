// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, "Unauthenticated."},
		{"old password", service.ErrOldPasswordIncorrect, http.StatusBadRequest, "Old password is incorrect"},
		{"watchlist duplicate", service.ErrAlreadyInWatchlist, http.StatusConflict, "Movie already in watchlist"},
		{"review duplicate", service.ErrAlreadyReviewed, http.StatusConflict, "You have already reviewed this movie"},
		{"watchlist missing", service.ErrWatchlistEntryNotFound, http.StatusNotFound, "Watchlist item not found"},
		{"review missing", fmt.Errorf("get: %w", service.ErrReviewNotFound), http.StatusNotFound, "Review not found"},
		{"user missing", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"bad upload", service.ErrUploadNotImage, http.StatusUnprocessableEntity, "The uploaded file is invalid."},
		{"malformed json", fmt.Errorf("%w: eof", utils.ErrMalformedBody), http.StatusBadRequest, "Malformed JSON body"},
		{"malformed multipart", ErrMalformedMultipart, http.StatusBadRequest, "Malformed multipart body"},
		{"malformed gzip", ErrMalformedGzip, http.StatusBadRequest, "Invalid gzip data"},
		{"no route", ErrRouteNotFound, http.StatusNotFound, "Not found"},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Request timeout"},
		{"generic not found", store.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"generic conflict", store.ErrConflict, http.StatusConflict, "Resource already exists"},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict, "The email has already been taken."},
		{"storage unavailable", fmt.Errorf("insert: %w", store.ErrStorageUnavailable), http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
