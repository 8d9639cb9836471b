// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/models"
)

type httpClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClient constructs the REST implementation of [Client].
// address may omit the scheme, "http://" is assumed then. A zero timeout
// leaves requests unbounded apart from ctx.
func NewHTTPClient(address string, timeout time.Duration, logger *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized starts a request carrying the stored bearer token.
func (h *httpClient) authorized(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}

// Login implements [Client]. It POSTs the credentials to /login/ and stores
// the returned jwtToken.
func (h *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		SetResult(&loginResponse).
		Post("/login/")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if loginResponse.JWTToken == "" {
		return "", ErrInvalidToken
	}

	h.SetToken(loginResponse.JWTToken)
	h.logger.Debug().Str("username", username).Msg("logged in")
	return loginResponse.JWTToken, nil
}

func (h *httpClient) ListStates(ctx context.Context) ([]models.State, error) {
	var states []models.State

	resp, err := h.authorized(ctx).SetResult(&states).Get("/states/")
	if err != nil {
		return nil, fmt.Errorf("list states request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return states, nil
}

func (h *httpClient) GetState(ctx context.Context, stateID int64) (models.State, error) {
	var state models.State

	resp, err := h.authorized(ctx).
		SetPathParam("stateId", strconv.FormatInt(stateID, 10)).
		SetResult(&state).
		Get("/states/{stateId}/")
	if err != nil {
		return models.State{}, fmt.Errorf("get state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.State{}, err
	}

	return state, nil
}

func (h *httpClient) GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	var stats models.StateStats

	resp, err := h.authorized(ctx).
		SetPathParam("stateId", strconv.FormatInt(stateID, 10)).
		SetResult(&stats).
		Get("/states/{stateId}/stats/")
	if err != nil {
		return models.StateStats{}, fmt.Errorf("get state stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StateStats{}, err
	}

	return stats, nil
}

func (h *httpClient) CreateDistrict(ctx context.Context, district models.District) (string, error) {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(district).
		Post("/districts/")
	if err != nil {
		return "", fmt.Errorf("create district request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpClient) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	var district models.District

	resp, err := h.authorized(ctx).
		SetPathParam("districtId", strconv.FormatInt(districtID, 10)).
		SetResult(&district).
		Get("/districts/{districtId}/")
	if err != nil {
		return models.District{}, fmt.Errorf("get district request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.District{}, err
	}

	return district, nil
}

func (h *httpClient) UpdateDistrict(ctx context.Context, districtID int64, district models.District) (string, error) {
	resp, err := h.authorized(ctx).
		SetPathParam("districtId", strconv.FormatInt(districtID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(district).
		Put("/districts/{districtId}/")
	if err != nil {
		return "", fmt.Errorf("update district request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpClient) DeleteDistrict(ctx context.Context, districtID int64) (string, error) {
	resp, err := h.authorized(ctx).
		SetPathParam("districtId", strconv.FormatInt(districtID, 10)).
		Delete("/districts/{districtId}/")
	if err != nil {
		return "", fmt.Errorf("delete district request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
