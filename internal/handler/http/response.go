// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/utils"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
)

// writeSuccess writes a successful envelope. data may be nil.
func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeSuccess").Msg("failed to write response")
	}
}

// writeError maps err to a failure envelope. Validation errors carry their
// field messages; server errors are logged and answered generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	resp := models.Response{Success: false}
	var status int

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		status = http.StatusUnprocessableEntity
		resp.Message = vErr.Error()
		resp.Errors = vErr.Fields
	} else {
		status, resp.Message = statusFromError(err)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, resp, status); wErr != nil {
		log.Err(wErr).Str("func", "writeError").Msg("failed to write response")
	}
}

// nonNil keeps empty lists serialized as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
