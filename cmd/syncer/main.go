// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-login-sync/internal/adapter"
	"github.com/MKhiriev/go-login-sync/internal/config"
	"github.com/MKhiriev/go-login-sync/internal/logger"
	"github.com/MKhiriev/go-login-sync/internal/service"
	"github.com/MKhiriev/go-login-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncer")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate local database")
	}

	repo := store.NewLoginRepository(db, log)
	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.Timeout,
	})

	syncer := service.NewSyncService(repo, serverAdapter, log)

	stats, err := syncer.Sync(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sync pass failed")
	}

	log.Info().
		Int("downloaded", stats.Downloaded).
		Int("applied", stats.Applied).
		Int("uploaded", stats.Uploaded).
		Int("deleted", stats.Deleted).
		Int("skipped", stats.Skipped).
		Int("rejected", stats.Rejected).
		Int("collisions", stats.Collisions).
		Msg("sync pass finished")
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

	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}
