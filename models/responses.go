// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the single JSON envelope used by every endpoint.
type Response struct {
	// Success is false for every non-2xx response.
	Success bool `json:"success"`

	// Message is a human-readable summary of the outcome.
	Message string `json:"message"`

	// Data holds the endpoint payload, omitted when there is none.
	Data any `json:"data,omitempty"`

	// Errors enumerates failing fields of a rejected request, keyed by the
	// JSON field name.
	Errors map[string][]string `json:"errors,omitempty"`
}
