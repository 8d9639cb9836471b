// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/service"
	"github.com/MKhiriev/covid-portal/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
