// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfgVersion  string
		build       models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{
			name:        "configured version wins",
			cfgVersion:  "1.0.0",
			build:       models.NewAppBuildInfo("0.9.0", "", ""),
			wantVersion: "1.0.0",
		},
		{
			name:        "falls back to build version",
			build:       models.NewAppBuildInfo("v2.5.1", "2026-10-01", "abc123"),
			wantVersion: "v2.5.1",
		},
		{
			name:    "no version anywhere",
			build:   models.NewAppBuildInfo("", "", ""),
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.cfgVersion}, tt.build, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("v1", "2026-10-01", "deadbeef")
	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := svc.GetBuildInfo(ctx)
	assert.Equal(t, "2026-10-01", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}
