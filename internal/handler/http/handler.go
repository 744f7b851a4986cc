// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/service"
)

type Handler struct {
	services *service.Services

	// mediaDir is served read-only under publicPath.
	mediaDir   string
	publicPath string

	// maxUploadSize bounds a single uploaded file; request bodies get some
	// headroom on top of it for the other form fields.
	maxUploadSize int64

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		mediaDir:       cfg.Storage.Files.MediaDir,
		publicPath:     publicPath(cfg.Storage.Files.PublicURL),
		maxUploadSize:  cfg.Storage.Files.MaxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
