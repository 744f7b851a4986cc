// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/mock"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/internal/utils"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testHashKey = "test-hash-key"

type authFixture struct {
	svc    *authService
	users  *mock.MockUserRepository
	tokens *mock.MockTokenRepository
}

func newAuthFixture(t *testing.T, tokenDuration time.Duration) authFixture {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)

	svc := NewAuthService(users, tokens, newTestMediaService(nil), config.App{
		TokenHashKey:  testHashKey,
		TokenDuration: tokenDuration,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop()).(*authService)
	svc.now = fixedClock

	return authFixture{svc: svc, users: users, tokens: tokens}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:                 "Ann",
		Email:                "ann@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t, time.Hour)
	ctx := context.Background()
	req := validRegisterRequest()

	f.users.EXPECT().EmailExists(ctx, req.Email).Return(false, nil)
	f.users.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Ann", u.Name)
			assert.NotEqual(t, req.Password, u.Password, "password must be hashed")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)))
			assert.Equal(t, fixedNow, u.CreatedAt)
			u.ID = 7
			return u, nil
		})

	var stored models.Token
	f.tokens.EXPECT().CreateToken(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tok models.Token) (models.Token, error) {
			stored = tok
			tok.ID = 11
			return tok, nil
		})

	payload, err := f.svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), payload.User.ID)
	assert.Equal(t, testDefaultPhoto, payload.User.ProfilePhoto)
	require.NotEmpty(t, payload.Token)

	assert.Equal(t, int64(7), stored.UserID)
	assert.Equal(t, models.DefaultTokenName, stored.Name)
	assert.Equal(t, utils.NewHasher(testHashKey).HashString(payload.Token), stored.TokenHash)
	assert.NotEqual(t, payload.Token, stored.TokenHash)
	require.NotNil(t, stored.ExpiresAt)
	assert.Equal(t, fixedNow.Add(time.Hour), *stored.ExpiresAt)
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	f := newAuthFixture(t, 0)
	req := validRegisterRequest()
	req.PasswordConfirmation = "other"
	req.Email = "nope"

	_, err := f.svc.Register(context.Background(), req)

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
}

// TestAuthService_Register_PasswordTooLong verifies that a password bcrypt
// cannot hash is rejected before any storage call.
func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	f := newAuthFixture(t, 0)
	req := validRegisterRequest()
	req.Password = strings.Repeat("a", 73)
	req.PasswordConfirmation = req.Password

	_, err := f.svc.Register(context.Background(), req)

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"The password field must not be greater than 72 bytes."}, vErr.Fields["password"])
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f authFixture)
	}{
		{
			name: "found by lookup",
			setup: func(f authFixture) {
				f.users.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "lost the insert race",
			setup: func(f authFixture) {
				f.users.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, 0)
			tt.setup(f)

			_, err := f.svc.Register(context.Background(), validRegisterRequest())

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, []string{"The email has already been taken."}, vErr.Fields["email"])
		})
	}
}

func TestAuthService_Register_TokenStoreError(t *testing.T) {
	f := newAuthFixture(t, 0)

	f.users.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 1}, nil)
	f.tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, errStorage)

	_, err := f.svc.Register(context.Background(), validRegisterRequest())

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash := mustHash(t, "secret123")
	user := models.User{ID: 3, Name: "Ann", Email: "ann@example.com", Password: hash, ProfilePhoto: ptr("profile_photos/a.png")}

	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "success", password: "secret123", found: user},
		{name: "wrong password", password: "secret124", found: user, wantErr: ErrInvalidCredentials},
		{name: "unknown email", password: "secret123", findErr: store.ErrNotFound, wantErr: ErrInvalidCredentials},
		{name: "storage failure", password: "secret123", findErr: errStorage, wantErr: errStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, 0)
			f.users.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				f.tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tok models.Token) (models.Token, error) {
						assert.Nil(t, tok.ExpiresAt, "zero duration issues non-expiring tokens")
						return tok, nil
					})
			}

			payload, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/storage/profile_photos/a.png", payload.User.ProfilePhoto)
			assert.NotEmpty(t, payload.Token)
		})
	}
}

func TestAuthService_Login_TokensAreDistinct(t *testing.T) {
	f := newAuthFixture(t, 0)
	user := models.User{ID: 3, Email: "ann@example.com", Password: mustHash(t, "secret123")}

	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil).Times(2)
	f.tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tok models.Token) (models.Token, error) { return tok, nil }).
		Times(2)

	req := models.LoginRequest{Email: "ann@example.com", Password: "secret123"}
	first, err := f.svc.Login(context.Background(), req)
	require.NoError(t, err)
	second, err := f.svc.Login(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

// ─────────────────────────────────────────────
// Resolve / Logout
// ─────────────────────────────────────────────

func TestAuthService_Resolve(t *testing.T) {
	digest := utils.NewHasher(testHashKey).HashString("plain")
	past := fixedNow.Add(-time.Minute)
	future := fixedNow.Add(time.Minute)

	tests := []struct {
		name     string
		plain    string
		token    models.Token
		findErr  error
		touch    bool
		touchErr error
		want     models.Identity
		wantErr  error
	}{
		{name: "empty token", plain: "", wantErr: ErrUnauthenticated},
		{name: "unknown token", plain: "plain", findErr: store.ErrNotFound, wantErr: ErrUnauthenticated},
		{name: "lookup failure", plain: "plain", findErr: errStorage, wantErr: errStorage},
		{name: "expired", plain: "plain", token: models.Token{ID: 1, UserID: 2, ExpiresAt: &past}, wantErr: ErrUnauthenticated},
		{
			name:  "valid with expiry",
			plain: "plain", token: models.Token{ID: 1, UserID: 2, ExpiresAt: &future},
			touch: true, want: models.Identity{UserID: 2, TokenID: 1},
		},
		{
			name:  "touch failure is tolerated",
			plain: "plain", token: models.Token{ID: 4, UserID: 5},
			touch: true, touchErr: errStorage, want: models.Identity{UserID: 5, TokenID: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, 0)
			if tt.plain != "" {
				f.tokens.EXPECT().FindTokenByHash(gomock.Any(), digest).Return(tt.token, tt.findErr)
			}
			if tt.touch {
				f.tokens.EXPECT().TouchToken(gomock.Any(), tt.token.ID, fixedNow).Return(tt.touchErr)
			}

			got, err := f.svc.Resolve(context.Background(), tt.plain)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantErr   error
	}{
		{name: "success"},
		{name: "already revoked", deleteErr: store.ErrNotFound, wantErr: ErrUnauthenticated},
		{name: "storage failure", deleteErr: errStorage, wantErr: errStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, 0)
			f.tokens.EXPECT().DeleteToken(gomock.Any(), int64(9)).Return(tt.deleteErr)

			err := f.svc.Logout(context.Background(), models.Identity{UserID: 1, TokenID: 9})

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// ChangePassword
// ─────────────────────────────────────────────

func TestAuthService_ChangePassword(t *testing.T) {
	identity := models.Identity{UserID: 3, TokenID: 1}
	user := models.User{ID: 3, Password: mustHash(t, "secret123")}

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		f.users.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(user, nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), int64(3), gomock.Any(), fixedNow).
			DoAndReturn(func(_ context.Context, _ int64, hash string, _ time.Time) error {
				ok, err := utils.CheckPassword(hash, "newsecret1")
				assert.NoError(t, err)
				assert.True(t, ok)
				return nil
			})

		err := f.svc.ChangePassword(context.Background(), identity, models.ChangePasswordRequest{
			OldPassword: "secret123", NewPassword: "newsecret1", NewPasswordConfirmation: "newsecret1",
		})

		require.NoError(t, err)
	})

	t.Run("old password incorrect", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		f.users.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(user, nil)

		err := f.svc.ChangePassword(context.Background(), identity, models.ChangePasswordRequest{
			OldPassword: "wrong", NewPassword: "newsecret1", NewPasswordConfirmation: "newsecret1",
		})

		assert.ErrorIs(t, err, ErrOldPasswordIncorrect)
	})

	t.Run("new password too long", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		long := strings.Repeat("n", 73)

		err := f.svc.ChangePassword(context.Background(), identity, models.ChangePasswordRequest{
			OldPassword: "secret123", NewPassword: long, NewPasswordConfirmation: long,
		})

		var vErr *validators.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "new_password")
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		f := newAuthFixture(t, 0)

		err := f.svc.ChangePassword(context.Background(), identity, models.ChangePasswordRequest{
			OldPassword: "secret123", NewPassword: "newsecret1", NewPasswordConfirmation: "newsecret2",
		})

		var vErr *validators.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "new_password")
	})
}
