// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,maxbytes=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the payload of the change-password endpoint.
type ChangePasswordRequest struct {
	OldPassword             string `json:"old_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,min=8,maxbytes=72"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"eqfield=NewPassword"`
}

// AuthPayload is returned by registration and login.
type AuthPayload struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}
