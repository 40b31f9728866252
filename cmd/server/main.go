// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/avoronov/steam-sync-relay/internal/adapter"
	"github.com/avoronov/steam-sync-relay/internal/config"
	"github.com/avoronov/steam-sync-relay/internal/handler"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/internal/server"
	"github.com/avoronov/steam-sync-relay/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("steam-sync-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	// the config carries API credentials, log only the safe parts
	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("environment", cfg.App.Environment).
		Bool("production", cfg.App.IsProduction()).
		Msg("configuration loaded")

	gateways := adapter.NewGateways(cfg, log)
	services := service.NewServices(gateways, cfg, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
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
