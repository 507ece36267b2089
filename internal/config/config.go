// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the syncer configuration from environment
// variables layered over built-in defaults.
package config

import (
	"errors"
	"time"
)

// Config is the full configuration of the sync client.
type Config struct {
	DB     ClientDB     `envPrefix:"DB_"`
	Server ServerConfig `envPrefix:"SERVER_"`
}

// ClientDB configures the local sqlite database holding the loginsL and
// loginsM tables.
type ClientDB struct {
	// DSN is the sqlite data source; ":memory:" is accepted for tests.
	DSN string `env:"DSN"`
}

// ServerConfig configures the HTTP adapter talking to the record server.
type ServerConfig struct {
	// BaseURL is the root of the record API.
	BaseURL string `env:"URL"`

	// Timeout bounds every HTTP round trip.
	Timeout time.Duration `env:"TIMEOUT"`
}

// defaults returns the configuration used when nothing is set in the
// environment.
func defaults() *Config {
	return &Config{
		DB: ClientDB{
			DSN: "logins.db",
		},
		Server: ServerConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 15 * time.Second,
		},
	}
}

// validate checks the assembled configuration for values no component can
// work with.
func (c *Config) validate() error {
	if c.DB.DSN == "" {
		return errors.New("config: empty database DSN")
	}
	if c.Server.BaseURL == "" {
		return errors.New("config: empty server base URL")
	}
	if c.Server.Timeout <= 0 {
		return errors.New("config: non-positive server timeout")
	}

	return nil
}
