// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/cineview/cineview-server/models"
)

// profileResponse wraps the caller's profile as {"user": ...}.
type profileResponse struct {
	User models.UserView `json:"user"`
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Profile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Profile retrieved successfully", profileResponse{User: user})
}

// updateProfile accepts either a JSON body with the new name or a multipart
// form that may also carry a profile_photo file.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if isMultipart(r) {
		f, err := h.parseForm(w, r, "profile_photo")
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer f.close()

		update.Name = f.str("name")
		if update.Photo, err = f.file("profile_photo"); err != nil {
			writeError(w, r, err)
			return
		}
	} else if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Profile updated successfully", profileResponse{User: user})
}

// listUsers returns the public directory of accounts.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Users retrieved successfully", nonNil(users))
}
