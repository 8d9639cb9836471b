// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 3000}, expected: "localhost:3000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:3000", expectedAddr: NetAddress{Host: "localhost", Port: 3000}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":3000", expectedAddr: NetAddress{Port: 3000}},
		{name: "missing colon", input: "localhost3000", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "invalid IP address", input: "invalid.host:3000", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags(newTestFlagSet(), []string{
		"-a", "127.0.0.1:3000",
		"-d", "portal.db",
		"-db-driver", "sqlite3",
		"-c", "/etc/portal.json",
		"-token-sign-key", "secret",
		"-token-issuer", "portal",
		"-token-duration", "2h",
		"-revalidate-subject",
		"-request-timeout", "5s",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "portal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/portal.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "portal", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.App.RevalidateTokenSubject)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags(newTestFlagSet(), []string{"-config", "/tmp/c.json"})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(newTestFlagSet(), nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags(newTestFlagSet(), []string{"-a", "not-an-address"})
	require.Error(t, err)
}
