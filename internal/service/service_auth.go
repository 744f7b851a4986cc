// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/internal/utils"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
)

const emailTakenMessage = "The email has already been taken."

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the opaque
// bearer token lifecycle. Passwords are hashed with bcrypt; tokens are
// stored only as keyed HMAC-SHA256 digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository persists token digests.
	tokenRepository store.TokenRepository

	// hasher digests plaintext tokens before storage or lookup. Its key must
	// stay the same for issued tokens to keep resolving.
	hasher *utils.Hasher

	// tokenDuration controls how long a newly issued token remains valid.
	// Zero means tokens never expire.
	tokenDuration time.Duration

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	validator validators.Validator
	media     MediaService

	// now is the clock used for timestamps and expiry checks.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the user and token
// repositories and populated with security parameters from cfg. The media
// service renders profile photo URLs in the returned user views.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, tokens store.TokenRepository, media MediaService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  users,
		tokenRepository: tokens,
		hasher:          utils.NewHasher(cfg.TokenHashKey),
		tokenDuration:   cfg.TokenDuration,
		bcryptCost:      cfg.BcryptCost,
		validator:       validators.NewStructValidator(),
		media:           media,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          logger,
	}
}

// Register creates a new user account and issues its first token.
//
// Returns the created user with the plaintext token or:
//   - a *validators.ValidationError for invalid input or a taken email;
//   - a wrapped storage error if persistence fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthPayload, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthPayload{}, err
	}

	exists, err := a.userRepository.EmailExists(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("email lookup failed")
		return models.AuthPayload{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return models.AuthPayload{}, validators.FieldError("email", emailTakenMessage)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthPayload{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthPayload{}, validators.FieldError("email", emailTakenMessage)
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthPayload{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.signIn(ctx, user)
}

// Login authenticates an existing user and issues a new token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthPayload{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.AuthPayload{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthPayload{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.Password, req.Password)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored password hash is unusable")
		return models.AuthPayload{}, fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.AuthPayload{}, ErrInvalidCredentials
	}

	return a.signIn(ctx, user)
}

// Logout deletes the token the request was authenticated with. Other tokens
// of the same user stay valid.
func (a *authService) Logout(ctx context.Context, identity models.Identity) error {
	err := a.tokenRepository.DeleteToken(ctx, identity.TokenID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUnauthenticated
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("token_id", identity.TokenID).Msg("token deletion failed")
		return fmt.Errorf("token deletion failed: %w", err)
	}

	return nil
}

// Resolve digests plainToken and looks it up. Unknown and expired tokens are
// normalised to ErrUnauthenticated. A successful lookup records the last use
// time; failing to do so does not reject the request.
func (a *authService) Resolve(ctx context.Context, plainToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if plainToken == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	token, err := a.tokenRepository.FindTokenByHash(ctx, a.hasher.HashString(plainToken))
	if errors.Is(err, store.ErrNotFound) {
		return models.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		log.Err(err).Msg("token lookup failed")
		return models.Identity{}, fmt.Errorf("token lookup failed: %w", err)
	}

	now := a.now()
	if token.Expired(now) {
		log.Debug().Int64("token_id", token.ID).Msg("token expired")
		return models.Identity{}, ErrUnauthenticated
	}

	if err = a.tokenRepository.TouchToken(ctx, token.ID, now); err != nil {
		log.Warn().Err(err).Int64("token_id", token.ID).Msg("failed to record token use")
	}

	return models.Identity{UserID: token.UserID, TokenID: token.ID}, nil
}

// ChangePassword replaces the caller's password after verifying the old one.
// Issued tokens are kept.
func (a *authService) ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.Password, req.OldPassword)
	if err != nil {
		return fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		return ErrOldPasswordIncorrect
	}

	hash, err := utils.HashPassword(req.NewPassword, a.bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, user.ID, hash, a.now()); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func (a *authService) signIn(ctx context.Context, user models.User) (models.AuthPayload, error) {
	issued, err := a.createToken(ctx, user.ID)
	if err != nil {
		return models.AuthPayload{}, err
	}

	return models.AuthPayload{
		User:  userView(user, a.media),
		Token: issued.String(),
	}, nil
}

// createToken generates a random token for userID and stores its digest.
// The plaintext is only ever held by the returned value.
func (a *authService) createToken(ctx context.Context, userID int64) (models.IssuedToken, error) {
	plain, err := utils.GenerateToken()
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := a.now()
	token := models.Token{
		UserID:    userID,
		Name:      models.DefaultTokenName,
		TokenHash: a.hasher.HashString(plain),
		CreatedAt: now,
	}
	if a.tokenDuration > 0 {
		expires := now.Add(a.tokenDuration)
		token.ExpiresAt = &expires
	}

	stored, err := a.tokenRepository.CreateToken(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("token persistence failed")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.IssuedToken{Token: stored, PlainText: plain}, nil
}
