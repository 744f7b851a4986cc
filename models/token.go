// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultTokenName is the name given to tokens issued on login and registration.
const DefaultTokenName = "auth_token"

// Token is a personal access token bound to exactly one user.
//
// Only the keyed digest of the secret is persisted; the plaintext secret is
// returned once, inside [IssuedToken], at creation time.
type Token struct {
	ID         int64
	UserID     int64
	Name       string
	TokenHash  string
	CreatedAt  time.Time
	LastUsedAt *time.Time
	// ExpiresAt is nil for tokens that never expire.
	ExpiresAt *time.Time
}

// Expired reports whether the token is past its expiry at the given moment.
func (t Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// IssuedToken is a freshly created token together with its plaintext value.
type IssuedToken struct {
	Token
	PlainText string
}

// String returns the plaintext bearer value.
func (t IssuedToken) String() string {
	return t.PlainText
}

// Identity is the authenticated caller of a request, resolved once from the
// bearer token at the request boundary and passed explicitly downstream.
type Identity struct {
	UserID  int64
	TokenID int64
}
