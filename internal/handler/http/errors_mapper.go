// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/internal/utils"
)

const internalErrorMessage = "Internal server error"

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched top to bottom, so resource-specific errors must
// come before the generic store errors they wrap.
var errorStatusMap = []errorStatus{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrUnauthenticated, http.StatusUnauthorized, "Unauthenticated."},
	{service.ErrOldPasswordIncorrect, http.StatusBadRequest, "Old password is incorrect"},

	{service.ErrAlreadyInWatchlist, http.StatusConflict, "Movie already in watchlist"},
	{service.ErrAlreadyReviewed, http.StatusConflict, "You have already reviewed this movie"},
	{service.ErrWatchlistEntryNotFound, http.StatusNotFound, "Watchlist item not found"},
	{service.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrInvalidUpload, http.StatusUnprocessableEntity, "The uploaded file is invalid."},

	{utils.ErrMalformedBody, http.StatusBadRequest, "Malformed JSON body"},
	{ErrMalformedMultipart, http.StatusBadRequest, "Malformed multipart body"},
	{ErrMalformedGzip, http.StatusBadRequest, "Invalid gzip data"},
	{ErrRouteNotFound, http.StatusNotFound, "Not found"},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, "Request timeout"},

	{store.ErrNotFound, http.StatusNotFound, "Resource not found"},
	{store.ErrConflict, http.StatusConflict, "Resource already exists"},
	{store.ErrEmailAlreadyExists, http.StatusConflict, "The email has already been taken."},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// statusFromError returns the HTTP status and client message for err. Unknown
// errors become a generic 500; their details only go to the log.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}
