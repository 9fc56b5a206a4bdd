package main

import (
	"context"
	"flag"
	"os"
	"time"

	"profrate/internal/config"
	"profrate/internal/module"
	"profrate/internal/platform/logger"
	"profrate/internal/platform/postgres"
	"profrate/internal/professor"
	"profrate/internal/rating"
	"profrate/internal/user"
)

func main() {
	ratings := flag.Int("ratings", 50, "Number of random sample ratings to submit")
	flag.Parse()

	config.LoadEnvFiles()
	log := logger.New(logger.Config{Pretty: true})

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = config.Defaults().Database.DSN
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, dsn, 5*time.Second)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	timeout := 5 * time.Second
	professors := professor.NewService(professor.NewPostgresRepo(pool, timeout))
	modules := module.NewService(module.NewPostgresRepo(pool, timeout, log))
	s := seeder{
		professors: professors,
		modules:    modules,
		users:      user.NewService(user.NewPostgresRepo(pool, timeout)),
		ratings:    rating.NewService(rating.NewPostgresRepo(pool, timeout, log), professors, modules, log),
		log:        log,
	}

	sum, err := s.run(ctx, seedOptions{
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "Admin12345"),
		Students:      5,
		Ratings:       *ratings,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().
		Int("professors", sum.Professors).
		Int("modules", sum.Modules).
		Int("instances", sum.Instances).
		Int("ratings", sum.Ratings).
		Msg("seed complete")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
