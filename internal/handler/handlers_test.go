// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
		cfg      *config.StructuredConfig
		wantErr  error
	}{
		{
			name:     "http address configured",
			services: &service.Services{},
			cfg:      &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}},
		},
		{
			name:     "no address",
			services: &service.Services{},
			cfg:      &config.StructuredConfig{},
			wantErr:  errNoHandlersAreCreated,
		},
		{
			name:    "no services",
			cfg:     &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}},
			wantErr: errNoServices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP)
		})
	}
}

func TestNewHandlers_RouterBuilds(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, &config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
	}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
