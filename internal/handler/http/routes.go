// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route of the JSON API, the media file
// server and the version endpoint.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/reviews/movie/{movie_id}", h.movieReviews)
		r.Get("/version", h.getServerVersion)
		r.Get(h.publicPath+"*", h.mediaFiles().ServeHTTP)
	})

	// routes acting on behalf of the token owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)

		r.Get("/user", h.profile)
		r.Post("/user/update", h.updateProfile)
		r.Post("/user/change-password", h.changePassword)
		r.Get("/users", h.listUsers)

		r.Get("/watchlist", h.listWatchlist)
		r.Post("/watchlist", h.addToWatchlist)
		r.Get("/watchlist/check/{movie_id}", h.checkWatchlist)
		r.Delete("/watchlist/{id}", h.removeFromWatchlist)

		r.Get("/reviews", h.listReviews)
		r.Post("/reviews", h.createReview)
		r.Get("/reviews/{id}", h.getReview)
		r.Put("/reviews/{id}", h.updateReview)
		r.Post("/reviews/{id}", h.updateReview)
		r.Delete("/reviews/{id}", h.deleteReview)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
