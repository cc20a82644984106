package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	resourceaccess "aegis/contexts/identity-access/resource-access-service"
	accesspostgres "aegis/contexts/identity-access/resource-access-service/adapters/postgres"
	"aegis/internal/platform/config"
	"aegis/internal/platform/db"
	"aegis/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var pg *db.Postgres
	var module resourceaccess.Module
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(accesspostgres.Models()...); err != nil {
			_ = pg.Close()
			return nil, err
		}

		repo := accesspostgres.NewRepository(pg.DB, logger)
		module = resourceaccess.NewModule(resourceaccess.Dependencies{
			Users:          repo,
			Resources:      repo,
			Idempotency:    repo,
			Clock:          accesspostgres.SystemClock{},
			IDGenerator:    accesspostgres.UUIDGenerator{},
			IdempotencyTTL: 7 * 24 * time.Hour,
			Logger:         logger,
		})
	} else {
		// Demo wiring: the seeded in-memory adapters stand in for the
		// identity store and resource catalog.
		module = resourceaccess.NewInMemoryModule(logger)
	}

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort), cfg.RequiredScope)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
