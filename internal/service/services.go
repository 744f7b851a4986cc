// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	WatchlistService WatchlistService
	ReviewService    ReviewService
	MediaService     MediaService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	media := NewMediaService(storages.MediaStorage, cfg.Storage.Files, cfg.App, logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.TokenRepository, media, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, media, logger),
		WatchlistService: NewWatchlistService(storages.WatchlistRepository, logger),
		ReviewService:    NewReviewService(storages.ReviewRepository, media, logger),
		MediaService:     media,
		AppInfoService:   appInfo,
	}, nil
}
