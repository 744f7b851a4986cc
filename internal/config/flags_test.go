// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "valid localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "valid IPv4", input: "192.168.1.1:443", expectedHost: "192.168.1.1", expectedPort: 443},
		{name: "all interfaces", input: ":8080", expectedHost: "", expectedPort: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:65536", expectError: true},
		{name: "invalid host", input: "not-an-ip:8080", expectError: true},
		{name: "too many colons", input: "a:b:c", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

// TestParseFlags_AllFlags verifies every flag lands in its config field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8000",
		"-d", "file.db",
		"-db-driver", "sqlite3",
		"-f", "/media",
		"-media-url", "/files/",
		"-max-upload-size", "4096",
		"-config", "/etc/cineview.json",
		"-token-hash-key", "k",
		"-token-duration", "24h",
		"-bcrypt-cost", "6",
		"-request-timeout", "15s",
		"-version", "2.0.0",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/media", cfg.Storage.Files.MediaDir)
	assert.Equal(t, "/files/", cfg.Storage.Files.PublicURL)
	assert.Equal(t, int64(4096), cfg.Storage.Files.MaxUploadSize)
	assert.Equal(t, "/etc/cineview.json", cfg.JSONFilePath)
	assert.Equal(t, "k", cfg.App.TokenHashKey)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 6, cfg.App.BcryptCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
}

// TestParseFlags_NoArgs verifies that omitted flags leave zero values so they
// never override other sources.
func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-unknown"}},
		{"bad address", []string{"-a", "nowhere"}},
		{"bad duration", []string{"-token-duration", "forever"}},
		{"bad cost", []string{"-bcrypt-cost", "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
