// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes is the entropy of a generated bearer token.
const tokenBytes = 32

// GenerateToken returns a new opaque bearer token: 32 random bytes encoded
// as unpadded URL-safe base64.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
