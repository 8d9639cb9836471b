// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/covid-portal/internal/adapter"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/models"
)

// action is a parsed command ready to be sent.
type action func(ctx context.Context, portal adapter.Client) (any, error)

type command struct {
	usage string
	nargs int
	parse func(args []string) (action, error)
}

// byID builds a command taking a single id argument.
func byID(usage string, call func(ctx context.Context, portal adapter.Client, id int64) (any, error)) command {
	return command{
		usage: usage,
		nargs: 1,
		parse: func(args []string) (action, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, portal adapter.Client) (any, error) {
				return call(ctx, portal, id)
			}, nil
		},
	}
}

var commands = map[string]command{
	"states": {
		usage: "states",
		parse: func([]string) (action, error) {
			return func(ctx context.Context, portal adapter.Client) (any, error) {
				return portal.ListStates(ctx)
			}, nil
		},
	},
	"state": byID("state <stateId>", func(ctx context.Context, portal adapter.Client, id int64) (any, error) {
		return portal.GetState(ctx, id)
	}),
	"stats": byID("stats <stateId>", func(ctx context.Context, portal adapter.Client, id int64) (any, error) {
		return portal.GetStateStats(ctx, id)
	}),
	"district": byID("district <districtId>", func(ctx context.Context, portal adapter.Client, id int64) (any, error) {
		return portal.GetDistrict(ctx, id)
	}),
	"delete-district": byID("delete-district <districtId>", func(ctx context.Context, portal adapter.Client, id int64) (any, error) {
		return portal.DeleteDistrict(ctx, id)
	}),
	"add-district": {
		usage: "add-district <json>",
		nargs: 1,
		parse: func(args []string) (action, error) {
			district, err := parseDistrict(args[0])
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, portal adapter.Client) (any, error) {
				return portal.CreateDistrict(ctx, district)
			}, nil
		},
	},
	"update-district": {
		usage: "update-district <districtId> <json>",
		nargs: 2,
		parse: func(args []string) (action, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			district, err := parseDistrict(args[1])
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, portal adapter.Client) (any, error) {
				return portal.UpdateDistrict(ctx, id, district)
			}, nil
		},
	},
}

var _ Client = (*App)(nil)

// App runs one portal command per invocation.
type App struct {
	adapter adapter.Client
	out     io.Writer
	logger  *logger.Logger
}

// NewApp returns an App printing results to out.
func NewApp(adapter adapter.Client, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: adapter, out: out, logger: logger}
}

// Run implements [Client]. Arguments are checked before any request is sent.
func (a *App) Run(ctx context.Context, username, password string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; available: %s", ErrNoCommand, Usage())
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q; available: %s", ErrUnknownCommand, args[0], Usage())
	}
	if len(args)-1 != cmd.nargs {
		return fmt.Errorf("%w: usage %s", ErrWrongArgsNumber, cmd.usage)
	}

	run, err := cmd.parse(args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if _, err = a.adapter.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Debug().Str("command", args[0]).Msg("running command")

	result, err := run(ctx, a.adapter)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return a.print(result)
}

func (a *App) print(result any) error {
	if text, ok := result.(string); ok {
		_, err := fmt.Fprintln(a.out, text)
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// Usage lists the supported commands.
func Usage() string {
	usages := make([]string, 0, len(commands))
	for _, cmd := range commands {
		usages = append(usages, cmd.usage)
	}
	sort.Strings(usages)
	return strings.Join(usages, ", ")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func parseDistrict(raw string) (models.District, error) {
	var district models.District
	if err := json.Unmarshal([]byte(raw), &district); err != nil {
		return models.District{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return district, nil
}
