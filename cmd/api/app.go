package main

import (
	"context"
	"net/http"
	"time"

	"profrate/internal/auth"
	"profrate/internal/config"
	"profrate/internal/httpx"
	"profrate/internal/module"
	"profrate/internal/professor"
	"profrate/internal/rating"
	"profrate/internal/user"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type application struct {
	handler   http.Handler
	users     *user.Service
	blacklist revocations
	log       zerolog.Logger
}

func newApplication(ctx context.Context, cfg *config.Config, repos repositories, log zerolog.Logger, reg *prometheus.Registry) *application {
	professorService := professor.NewService(repos.professors)
	moduleService := module.NewService(repos.modules)
	userService := user.NewService(repos.users)
	authService := auth.NewService(cfg.JWT.Secret, cfg.JWT.TTL, userService, repos.blacklist)
	ratingService := rating.NewService(repos.ratings, professorService, moduleService, log, rating.WithMetrics(reg))

	professorHandler := professor.NewHTTPHandler(professorService, log)
	moduleHandler := module.NewHTTPHandler(moduleService, log)
	ratingHandler := rating.NewHTTPHandler(ratingService, log)
	userHandler := user.NewHTTPHandler(userService, log)
	authHandler := auth.NewHTTPHandler(authService, log)

	authenticated := httpx.AuthMiddleware(cfg.JWT.Secret, repos.blacklist)
	protect := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, authenticated)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, authenticated, httpx.RequireRole(user.RoleAdmin))
	}

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := repos.ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	router.HandleFunc("POST /v1/auth/register", authHandler.Register)
	router.HandleFunc("POST /v1/auth/login", authHandler.Login)
	router.Handle("POST /v1/auth/logout", protect(authHandler.Logout))
	router.Handle("GET /v1/me", protect(userHandler.GetCurrentUser))

	router.Handle("GET /v1/module-instances", protect(moduleHandler.ListInstances))
	router.Handle("GET /v1/module-instances/{id}", protect(moduleHandler.GetInstance))

	router.Handle("GET /v1/professors", protect(ratingHandler.Overview))
	router.Handle("GET /v1/professors/{id}", protect(professorHandler.Get))
	router.Handle("GET /v1/professors/{id}/average", protect(ratingHandler.ProfessorAverage))
	router.Handle("GET /v1/professors/{id}/modules/{code}/average", protect(ratingHandler.ModuleAverage))

	router.Handle("POST /v1/ratings", protect(ratingHandler.Submit))
	router.Handle("GET /v1/ratings", protect(ratingHandler.Mine))

	router.Handle("POST /v1/admin/professors", admin(professorHandler.Create))
	router.Handle("POST /v1/admin/modules", admin(moduleHandler.CreateModule))
	router.Handle("POST /v1/admin/module-instances", admin(moduleHandler.CreateInstance))
	router.Handle("POST /v1/admin/module-instances/{id}/professors", admin(moduleHandler.AssignProfessor))

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	metrics := httpx.NewMetrics(reg)

	// Metrics reads the matched route pattern, so it must sit right on the mux.
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORS.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes),
		limiter.Middleware,
		metrics.Middleware,
	)

	return &application{handler: handler, users: userService, blacklist: repos.blacklist, log: log}
}

// sweepBlacklist drops expired revocations every interval until ctx ends.
func (a *application) sweepBlacklist(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := a.blacklist.CleanupExpired(ctx)
			if err != nil {
				a.log.Error().Err(err).Msg("blacklist cleanup failed")
				continue
			}
			if n > 0 {
				a.log.Debug().Int64("removed", n).Msg("expired revocations removed")
			}
		}
	}
}
