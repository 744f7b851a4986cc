// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/cineview/cineview-server/models"

func userView(user models.User, media MediaService) models.UserView {
	return models.UserView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfilePhoto: media.URL(user.ProfilePhoto),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func userSummary(user models.User, media MediaService) models.UserSummary {
	return models.UserSummary{
		ID:           user.ID,
		Name:         user.Name,
		ProfilePhoto: media.URL(user.ProfilePhoto),
	}
}
