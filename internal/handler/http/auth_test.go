// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPayload = models.AuthPayload{
	User: models.UserView{
		ID:           7,
		Name:         "Ann",
		Email:        "ann@example.com",
		ProfilePhoto: "https://example.com/default.png",
	},
	Token: "plain-token",
}

func TestRegister(t *testing.T) {
	req := models.RegisterRequest{
		Name:                 "Ann",
		Email:                "ann@example.com",
		Password:             "password1",
		PasswordConfirmation: "password1",
	}

	tests := []struct {
		name        string
		body        string
		setup       func(m *testServices)
		wantStatus  int
		wantMessage string
		wantErrors  map[string][]string
	}{
		{
			name: "created",
			body: `{"name":"Ann","email":"ann@example.com","password":"password1","password_confirmation":"password1"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Register(gomock.Any(), req).Return(testPayload, nil)
			},
			wantStatus:  http.StatusCreated,
			wantMessage: "Registration successful",
		},
		{
			name: "email taken",
			body: `{"name":"Ann","email":"ann@example.com","password":"password1","password_confirmation":"password1"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Register(gomock.Any(), req).
					Return(models.AuthPayload{}, validators.FieldError("email", "The email has already been taken."))
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "The email has already been taken.",
			wantErrors:  map[string][]string{"email": {"The email has already been taken."}},
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			setup:       func(m *testServices) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Malformed JSON body",
		},
		{
			name: "store failure",
			body: `{"name":"Ann","email":"ann@example.com","password":"password1","password_confirmation":"password1"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Register(gomock.Any(), req).Return(models.AuthPayload{}, errors.New("db down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			tt.setup(mocks)

			rr := httptest.NewRecorder()
			h.register(rr, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr.Body)
			assert.Equal(t, tt.wantStatus < 300, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, tt.wantErrors, env.Errors)

			if tt.wantStatus == http.StatusCreated {
				var got models.AuthPayload
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, testPayload.Token, got.Token)
				assert.Equal(t, testPayload.User.Email, got.User.Email)
			}
		})
	}
}

func TestRegister_NeverEchoesPassword(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(testPayload, nil)

	rr := httptest.NewRecorder()
	h.register(rr, jsonRequest(http.MethodPost, "/register", models.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "password1", PasswordConfirmation: "password1",
	}))

	assert.NotContains(t, rr.Body.String(), "password")
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "ok", wantStatus: http.StatusOK, wantMessage: "Login successful"},
		{name: "bad credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{
			name:        "validation",
			err:         validators.FieldError("email", "The email field is required."),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "The email field is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			payload := testPayload
			if tt.err != nil {
				payload = models.AuthPayload{}
			}
			mocks.auth.EXPECT().
				Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "password1"}).
				Return(payload, tt.err)

			rr := httptest.NewRecorder()
			h.login(rr, jsonRequest(http.MethodPost, "/login", models.LoginRequest{Email: "ann@example.com", Password: "password1"}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr.Body)
			assert.Equal(t, tt.wantMessage, env.Message)
			if tt.err == nil {
				assert.Contains(t, string(env.Data), `"token":"plain-token"`)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().Logout(gomock.Any(), testIdentity).Return(nil)

	rr := httptest.NewRecorder()
	h.logout(rr, authed(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr.Body)
	assert.True(t, env.Success)
	assert.Equal(t, "Logout successful", env.Message)
	assert.Empty(t, env.Data)
}

func TestLogout_WithoutIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.logout(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestChangePassword(t *testing.T) {
	body := models.ChangePasswordRequest{
		OldPassword:             "password1",
		NewPassword:             "password2",
		NewPasswordConfirmation: "password2",
	}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "changed", wantStatus: http.StatusOK, wantMessage: "Password changed successfully"},
		{name: "wrong old password", err: service.ErrOldPasswordIncorrect, wantStatus: http.StatusBadRequest, wantMessage: "Old password is incorrect"},
		{
			name:        "confirmation mismatch",
			err:         validators.FieldError("new_password", "The new password field confirmation does not match."),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "The new password field confirmation does not match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.auth.EXPECT().ChangePassword(gomock.Any(), testIdentity, body).Return(tt.err)

			rr := httptest.NewRecorder()
			h.changePassword(rr, authed(jsonRequest(http.MethodPost, "/user/change-password", body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope(t, rr.Body).Message)
		})
	}
}
