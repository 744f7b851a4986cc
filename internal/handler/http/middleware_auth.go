// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it via [service.AuthService.Resolve], and on success stores the
// caller's [models.Identity] in the request context before delegating to the
// next handler. The request logger is enriched with the user id.
//
// Every rejection is answered with 401 and the "Unauthenticated." envelope;
// the precise reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("missing bearer token")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Resolve(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, identity)
		ctx = log.WithUserID(identity.UserID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns:
//   - [ErrEmptyAuthorizationHeader] if the header is empty;
//   - [ErrInvalidAuthorizationHeader] if the scheme is not Bearer;
//   - [ErrEmptyToken] if no token follows the scheme.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
