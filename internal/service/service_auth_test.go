// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/mock"
	"github.com/MKhiriev/covid-portal/internal/store"
	"github.com/MKhiriev/covid-portal/internal/utils"
	"github.com/MKhiriev/covid-portal/models"
)

const testSignKey = "test-sign-key"

func newTestAuthSvc(t *testing.T, cfg config.App) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = testSignKey
	}
	return NewAuthService(repo, cfg, logger.Nop()), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	stored := models.User{Username: "alice", Password: hashed(t, "secret")}
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)

	user, err := svc.Login(ctx, models.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "bob").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.User{Username: "bob", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestAuthService_Login_EmptyUsername(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.Login(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	stored := models.User{Username: "alice", Password: hashed(t, "secret")}
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)

	_, err := svc.Login(ctx, models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthService_Login_EmptyPasswordIsWrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	stored := models.User{Username: "alice", Password: hashed(t, "secret")}
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)

	_, err := svc.Login(ctx, models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	dbErr := errors.New("connection refused")
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.User{Username: "alice", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidUser)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{TokenIssuer: "covid-portal", TokenDuration: time.Hour})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
}

func TestAuthService_CreateToken_EmptyUsername(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	other, err := utils.GenerateJWTToken("alice", "", 0, "another-key")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":        "not-a-jwt",
		"empty":          "",
		"foreign secret": other.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{TokenDuration: time.Nanosecond})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_RevalidatesSubject(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{RevalidateTokenSubject: true})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{Username: "alice"}, nil)
	_, err = svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound)
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_SignatureOnlyByDefault(t *testing.T) {
	// no repository expectations: any lookup would fail the test
	svc, _ := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "deleted-user"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "deleted-user", parsed.Username)
}
