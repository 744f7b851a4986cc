// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the cineview server.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Cross-cutting concerns such as bearer-token authentication, request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer. Every JSON
// response uses the [models.Response] envelope.
package http
