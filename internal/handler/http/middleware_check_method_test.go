// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux shaped like the watchlist routes.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/watchlist", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("entries"))
	})
	router.Post("/watchlist", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Delete("/watchlist/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /watchlist passes through", http.MethodGet, "/watchlist", http.StatusOK},
		{"POST /watchlist passes through", http.MethodPost, "/watchlist", http.StatusCreated},
		{"DELETE /watchlist/{id} passes through", http.MethodDelete, "/watchlist/3", http.StatusOK},
		{"GET /users passes through", http.MethodGet, "/users", http.StatusOK},

		{"PUT /watchlist is hidden", http.MethodPut, "/watchlist", http.StatusNotFound},
		{"PATCH /watchlist is hidden", http.MethodPatch, "/watchlist", http.StatusNotFound},
		{"GET /watchlist/{id} is hidden", http.MethodGet, "/watchlist/3", http.StatusNotFound},
		{"POST /users is hidden", http.MethodPost, "/users", http.StatusNotFound},
		{"HEAD /users is hidden", http.MethodHead, "/users", http.StatusNotFound},

		// chi answers unknown paths before MethodNotAllowed is consulted.
		{"GET /nowhere", http.MethodGet, "/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/watchlist", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "entries", rr.Body.String())
}

func TestCheckHTTPMethod_AnswersWithEnvelope(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/watchlist", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	env := decodeEnvelope(t, rr.Body)
	assert.False(t, env.Success)
	assert.Equal(t, "Not found", env.Message)
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	codes := make(chan [2]int, n)

	for i := range n {
		go func(i int) {
			method, want := http.MethodGet, http.StatusOK
			if i%2 == 1 {
				method, want = http.MethodPatch, http.StatusNotFound
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/watchlist", nil))
			codes <- [2]int{want, rr.Code}
		}(i)
	}

	for range n {
		got := <-codes
		assert.Equal(t, got[0], got[1])
	}
}
