// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command useradd provisions a portal user with a bcrypt-hashed password.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/store"
	"github.com/MKhiriev/covid-portal/internal/utils"
	"github.com/MKhiriev/covid-portal/models"
)

func main() {
	log := logger.New("useradd", os.Stderr)

	cfg, err := config.GetUserAddConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nusage: useradd -d <dsn> [-db-driver sqlite3|pgx] -u <username> -p <password>\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err = run(ctx, cfg, log); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("user %q created\n", cfg.Username)
}

func run(ctx context.Context, cfg *config.UserAddConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, config.Storage{DB: cfg.DB}, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storages.Close()

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	err = storages.UserRepository.CreateUser(ctx, models.User{Username: cfg.Username, Password: hash})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return errors.New("user already exists")
	}

	return err
}
