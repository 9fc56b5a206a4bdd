package main

import (
	"context"

	"profrate/internal/auth"
	"profrate/internal/config"
	"profrate/internal/memstore"
	"profrate/internal/module"
	"profrate/internal/platform/postgres"
	"profrate/internal/professor"
	"profrate/internal/rating"
	"profrate/internal/user"

	"github.com/rs/zerolog"
)

// revocations is the blacklist as the server needs it.
type revocations interface {
	auth.Blacklist
	CleanupExpired(ctx context.Context) (int64, error)
}

type repositories struct {
	professors professor.Repository
	modules    module.Repository
	ratings    rating.Repository
	users      user.Repository
	blacklist  revocations

	ping  func(ctx context.Context) error
	close func()
}

func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repositories, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return memoryRepositories(memstore.New()), nil
	}

	pool, err := postgres.Open(ctx, cfg.Database.DSN, cfg.Database.Timeout)
	if err != nil {
		return repositories{}, err
	}
	log.Info().Str("dsn", postgres.RedactDSN(cfg.Database.DSN)).Msg("database connection OK")

	timeout := cfg.Database.Timeout
	return repositories{
		professors: professor.NewPostgresRepo(pool, timeout),
		modules:    module.NewPostgresRepo(pool, timeout, log),
		ratings:    rating.NewPostgresRepo(pool, timeout, log),
		users:      user.NewPostgresRepo(pool, timeout),
		blacklist:  auth.NewBlacklistPG(pool, timeout),
		ping:       pool.Ping,
		close:      pool.Close,
	}, nil
}

func memoryRepositories(store *memstore.Store) repositories {
	return repositories{
		professors: store.Professors(),
		modules:    store.Modules(),
		ratings:    store.Ratings(),
		users:      store.Users(),
		blacklist:  store.Blacklist(),
		ping:       func(context.Context) error { return nil },
		close:      func() {},
	}
}
