// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/covid-portal/internal/adapter"
	"github.com/MKhiriev/covid-portal/internal/client"
	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
)

func main() {
	log := logger.New("covid-portal-client", os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nusage: client -a <base-url> -u <user> -p <password> <command> [args]\ncommands: %s\n", err, client.Usage())
		os.Exit(2)
	}

	portal, err := adapter.NewHTTPClient(cfg.ServerAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(portal, os.Stdout, log)
	if err = app.Run(ctx, cfg.Username, cfg.Password, cfg.Args); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
