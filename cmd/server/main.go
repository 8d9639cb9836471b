// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/handler"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/server"
	"github.com/MKhiriev/covid-portal/internal/service"
	"github.com/MKhiriev/covid-portal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("covid-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
