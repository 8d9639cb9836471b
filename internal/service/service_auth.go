// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/store"
	"github.com/MKhiriev/covid-portal/internal/utils"
	"github.com/MKhiriev/covid-portal/internal/validators"
	"github.com/MKhiriev/covid-portal/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes kept in the UserRepository
// and issues and verifies HS256 JWT tokens carrying the username.
type authService struct {
	// userRepository is the read side of the credential store.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Empty disables both setting and checking the claim.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without "exp".
	tokenDuration time.Duration

	// revalidateSubject makes ParseToken look the username up in the
	// credential store after the signature has been verified.
	revalidateSubject bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		validator:         validators.NewStructValidator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		revalidateSubject: cfg.RevalidateTokenSubject,
		logger:            logger,
	}
}

// Login authenticates an existing user.
//
// Returns the stored user record or:
//   - ErrInvalidUser if Username is empty or unknown.
//   - ErrInvalidPassword if the password does not match the stored hash.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldUsername); err != nil {
		log.Debug().Err(err).Msg("login without username")
		return models.User{}, ErrInvalidUser
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", user.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidUser
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.Password, user.Password); err != nil {
		log.Info().Str("username", user.Username).Msg("wrong password")
		return models.User{}, ErrInvalidPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Username, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, expired, wrong issuer, malformed,
// missing username) is normalised to ErrTokenIsExpiredOrInvalid. With
// subject revalidation enabled a username that is no longer in the
// credential store is rejected the same way.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if !a.revalidateSubject {
		return token, nil
	}

	_, err = a.userRepository.FindUserByUsername(ctx, token.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		logger.FromContext(ctx).Info().Str("username", token.Username).Msg("token subject no longer exists")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	case err != nil:
		return models.Token{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return token, nil
}
