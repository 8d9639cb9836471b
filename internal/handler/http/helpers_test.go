// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/service"
	"github.com/MKhiriev/covid-portal/models"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

const goodToken = "good.jwt.token"

// fakeAuthService implements service.AuthService. A nil fn field falls back
// to accepting goodToken for "alice".
type fakeAuthService struct {
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, user)
	}
	return user, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: goodToken, Username: user.Username}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString != goodToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, Username: "alice"}, nil
}

type fakeStateService struct {
	listStatesFn    func(ctx context.Context) ([]models.State, error)
	getStateFn      func(ctx context.Context, stateID int64) (models.State, error)
	getStateStatsFn func(ctx context.Context, stateID int64) (models.StateStats, error)
}

func (f *fakeStateService) ListStates(ctx context.Context) ([]models.State, error) {
	return f.listStatesFn(ctx)
}

func (f *fakeStateService) GetState(ctx context.Context, stateID int64) (models.State, error) {
	return f.getStateFn(ctx, stateID)
}

func (f *fakeStateService) GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	return f.getStateStatsFn(ctx, stateID)
}

type fakeDistrictService struct {
	createFn func(ctx context.Context, district models.District) (int64, error)
	getFn    func(ctx context.Context, districtID int64) (models.District, error)
	updateFn func(ctx context.Context, district models.District) (int64, error)
	deleteFn func(ctx context.Context, districtID int64) (int64, error)
}

func (f *fakeDistrictService) CreateDistrict(ctx context.Context, district models.District) (int64, error) {
	return f.createFn(ctx, district)
}

func (f *fakeDistrictService) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	return f.getFn(ctx, districtID)
}

func (f *fakeDistrictService) UpdateDistrict(ctx context.Context, district models.District) (int64, error) {
	return f.updateFn(ctx, district)
}

func (f *fakeDistrictService) DeleteDistrict(ctx context.Context, districtID int64) (int64, error) {
	return f.deleteFn(ctx, districtID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services with a nop
// logger. A nil AuthService is replaced by the default fakeAuthService.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// serve runs a request through the full router. An empty token sends no
// Authorization header.
func serve(h *Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
