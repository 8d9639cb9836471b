// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/service"
	"github.com/MKhiriev/covid-portal/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// and validates it via [service.AuthService.ParseToken]. On success the
// username is added to the request-scoped logger and the request is passed
// on unchanged otherwise.
//
// The middleware rejects requests with 401 and the body "Invalid JWT Token"
// when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, malformed, or signed with another key.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteText(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			utils.WriteText(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Info().Err(err).Msg("token rejected")
				utils.WriteText(w, msgInvalidToken, http.StatusUnauthorized)
				return
			}
			writeError(w, r, err)
			return
		}

		l := log.With().Str("username", token.Username).Logger()
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// The scheme itself is not checked. It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains no space.
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
