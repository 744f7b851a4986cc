// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/models"
)

func (h *Handler) listWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.WatchlistService.List(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Watchlist retrieved successfully", nonNil(entries))
}

func (h *Handler) addToWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.WatchlistCreate
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.services.WatchlistService.Add(r.Context(), id.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "Movie added to watchlist", entry)
}

func (h *Handler) removeFromWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entryID, err := pathID(r, "id", service.ErrWatchlistEntryNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.WatchlistService.Remove(r.Context(), id.UserID, entryID); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Movie removed from watchlist", nil)
}

func (h *Handler) checkWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	found, err := h.services.WatchlistService.Contains(r.Context(), id.UserID, movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Watchlist status retrieved", models.WatchlistCheck{InWatchlist: found})
}
