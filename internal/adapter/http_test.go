// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/models"
)

const testToken = "header.payload.signature"

func newTestClient(t *testing.T, serverURL string) *httpClient {
	t.Helper()

	c, err := NewHTTPClient(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login/", r.URL.Path)

		var user models.User
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "christopher_phillips", user.Username)
		assert.Equal(t, "christy@123", user.Password)

		writeJSON(t, w, models.LoginResponse{JWTToken: testToken})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	token, err := c.Login(context.Background(), "christopher_phillips", "christy@123")

	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, testToken, c.Token())
}

func TestLogin_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid password"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "christopher_phillips", "wrong")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid password")
	assert.Empty(t, c.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.LoginResponse{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "u", "p")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

// ── States ──────────────────────────────────────────────────────────────────

func TestListStates_Success(t *testing.T) {
	want := []models.State{
		{StateID: 1, StateName: "Andaman and Nicobar Islands", Population: 380581},
		{StateID: 2, StateName: "Andhra Pradesh", Population: 49386799},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/states/", r.URL.Path)
		requireBearer(t, r)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	got, err := c.ListStates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListStates_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Invalid JWT Token"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ListStates(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetState_Success(t *testing.T) {
	want := models.State{StateID: 8, StateName: "Delhi", Population: 16787941}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/states/8/", r.URL.Path)
		requireBearer(t, r)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	got, err := c.GetState(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetState_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	_, err := c.GetState(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStateStats_Success(t *testing.T) {
	want := models.StateStats{TotalCases: 724355, TotalCured: 615324, TotalActive: 99703, TotalDeaths: 9328}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/states/8/stats/", r.URL.Path)
		requireBearer(t, r)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	got, err := c.GetStateStats(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Districts ───────────────────────────────────────────────────────────────

func TestCreateDistrict_Success(t *testing.T) {
	district := models.District{DistrictName: "Bagalkot", StateID: 3, Cases: 2323, Cured: 2000, Active: 315, Deaths: 8}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/districts/", r.URL.Path)
		requireBearer(t, r)

		var got models.District
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, district, got)

		_, _ = w.Write([]byte("District Successfully Added"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	msg, err := c.CreateDistrict(context.Background(), district)
	require.NoError(t, err)
	assert.Equal(t, "District Successfully Added", msg)
}

func TestCreateDistrict_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("validation failed: districtName is required"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	_, err := c.CreateDistrict(context.Background(), models.District{StateID: 3})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "districtName is required")
}

func TestGetDistrict_Success(t *testing.T) {
	want := models.District{DistrictID: 322, DistrictName: "Palakkad", StateID: 17, Cases: 61558, Cured: 59276, Active: 2095, Deaths: 177}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/districts/322/", r.URL.Path)
		requireBearer(t, r)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	got, err := c.GetDistrict(context.Background(), 322)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateDistrict_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/districts/322/", r.URL.Path)
		requireBearer(t, r)
		_, _ = w.Write([]byte("District Details Updated"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	msg, err := c.UpdateDistrict(context.Background(), 322, models.District{DistrictName: "Nadia", StateID: 3})
	require.NoError(t, err)
	assert.Equal(t, "District Details Updated", msg)
}

func TestDeleteDistrict_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/districts/322/", r.URL.Path)
		requireBearer(t, r)
		_, _ = w.Write([]byte("District Removed"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	msg, err := c.DeleteDistrict(context.Background(), 322)
	require.NoError(t, err)
	assert.Equal(t, "District Removed", msg)
}

func TestDeleteDistrict_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Server Error"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	_, err := c.DeleteDistrict(context.Background(), 322)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestUnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(testToken)

	_, err := c.GetDistrict(context.Background(), 1)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "http 503: Service Unavailable", statusErr.Error())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding spaces", "  localhost:3000 ", "http://localhost:3000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
