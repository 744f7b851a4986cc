// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
)

// profilePhotoField is the multipart field carrying a new avatar.
const profilePhotoField = "profile_photo"

type userService struct {
	userRepository store.UserRepository
	media          MediaService
	validator      validators.Validator
	now            func() time.Time
	logger         *logger.Logger
}

func NewUserService(users store.UserRepository, media MediaService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: users,
		media:          media,
		validator:      validators.NewStructValidator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *userService) Profile(ctx context.Context, identity models.Identity) (models.UserView, error) {
	user, err := s.findUser(ctx, identity.UserID)
	if err != nil {
		return models.UserView{}, err
	}

	return userView(user, s.media), nil
}

// UpdateProfile renames the caller and, when a photo is attached, replaces
// the avatar. The previous file is removed only after the row points at the
// new one; if the row update fails, the new file is removed instead.
func (s *userService) UpdateProfile(ctx context.Context, identity models.Identity, update models.ProfileUpdate) (models.UserView, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.UserView{}, err
	}

	user, err := s.findUser(ctx, identity.UserID)
	if err != nil {
		return models.UserView{}, err
	}

	var photo *string
	if update.Photo != nil {
		path, err := s.media.Attach(ctx, models.ProfilePhotos, *update.Photo)
		if err != nil {
			return models.UserView{}, uploadFieldError(profilePhotoField, err)
		}
		photo = &path
	}

	updated, err := s.userRepository.UpdateProfile(ctx, user.ID, update.Name, photo, s.now())
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("profile update failed")
		if rmErr := s.media.Remove(ctx, photo); rmErr != nil {
			log.Warn().Err(rmErr).Msg("orphaned profile photo was not removed")
		}
		return models.UserView{}, fmt.Errorf("profile update failed: %w", err)
	}

	if photo != nil {
		if rmErr := s.media.Remove(ctx, user.ProfilePhoto); rmErr != nil {
			log.Warn().Err(rmErr).Int64("user_id", user.ID).Msg("previous profile photo was not removed")
		}
	}

	return userView(updated, s.media), nil
}

func (s *userService) List(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, userSummary(u, s.media))
	}

	return summaries, nil
}

func (s *userService) findUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
