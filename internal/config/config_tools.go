// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

const (
	defaultClientServerAddress  = "http://localhost:3000"
	defaultClientRequestTimeout = 10 * time.Second
)

var (
	// ErrInvalidClientConfigs indicates missing client credentials or address.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidUserAddConfigs indicates missing provisioning settings.
	ErrInvalidUserAddConfigs = errors.New("invalid useradd configuration")
)

// ClientConfig configures the command-line REST client.
type ClientConfig struct {
	// ServerAddress is the portal base URL, the scheme may be omitted.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"CLIENT_SERVER_ADDRESS"`

	// Env: CLIENT_USERNAME
	Username string `env:"CLIENT_USERNAME"`

	// Env: CLIENT_PASSWORD
	Password string `env:"CLIENT_PASSWORD"`

	// RequestTimeout bounds every HTTP round trip.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`

	// Args holds the positional arguments left after flag parsing:
	// the command name followed by its arguments.
	Args []string
}

// UserAddConfig configures the credential provisioning tool.
type UserAddConfig struct {
	// DB reuses the server storage variables (STORAGE_DB_DRIVER,
	// STORAGE_DB_DATABASE_URI).
	DB DB `envPrefix:"STORAGE_DB_"`

	// Env: USERADD_USERNAME
	Username string `env:"USERADD_USERNAME"`

	// Env: USERADD_PASSWORD
	Password string `env:"USERADD_PASSWORD"`
}

// GetClientConfig loads the client configuration from the environment and
// os.Args. Flags win over environment variables.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(flag.CommandLine, os.Args[1:])
}

func getClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	envCfg := new(ClientConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := ParseClientFlags(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, c := range []*ClientConfig{envCfg, flagsCfg} {
		if err = mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultClientServerAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultClientRequestTimeout
	}

	switch {
	case cfg.Username == "" || cfg.Password == "":
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidClientConfigs)
	case cfg.RequestTimeout < 0:
		return nil, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidClientConfigs)
	case len(cfg.Args) == 0:
		return nil, fmt.Errorf("%w: command is required", ErrInvalidClientConfigs)
	}

	return cfg, nil
}

// ParseClientFlags parses the client flags from args using fs.
//
// Flags:
//
//	-a portal base URL
//	-u username
//	-p password
//	-request-timeout per-request timeout (e.g., "10s")
func ParseClientFlags(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg := new(ClientConfig)

	fs.StringVar(&cfg.ServerAddress, "a", "", "Portal base URL")
	fs.StringVar(&cfg.Username, "u", "", "Username")
	fs.StringVar(&cfg.Password, "p", "", "Password")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Args = fs.Args()

	return cfg, nil
}

// GetUserAddConfig loads the provisioning configuration from the environment
// and os.Args. Flags win over environment variables.
func GetUserAddConfig() (*UserAddConfig, error) {
	return getUserAddConfig(flag.CommandLine, os.Args[1:])
}

func getUserAddConfig(fs *flag.FlagSet, args []string) (*UserAddConfig, error) {
	envCfg := new(UserAddConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg := new(UserAddConfig)
	fs.StringVar(&flagsCfg.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&flagsCfg.DB.Driver, "db-driver", "", "Database driver (sqlite3 or pgx)")
	fs.StringVar(&flagsCfg.Username, "u", "", "Username")
	fs.StringVar(&flagsCfg.Password, "p", "", "Password")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(UserAddConfig)
	for _, c := range []*UserAddConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.DB.Driver == "" {
		cfg.DB.Driver = defaultDriver
	}

	switch {
	case cfg.DB.DSN == "":
		return nil, fmt.Errorf("%w: database DSN is required", ErrInvalidUserAddConfigs)
	case cfg.DB.Driver != DriverSQLite && cfg.DB.Driver != DriverPostgres:
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrInvalidUserAddConfigs, cfg.DB.Driver)
	case cfg.Username == "" || cfg.Password == "":
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidUserAddConfigs)
	}

	return cfg, nil
}
