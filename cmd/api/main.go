package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/wordpass/wordpass-go/internal/config"
	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/handler"
	"github.com/wordpass/wordpass-go/internal/metrics"
	"github.com/wordpass/wordpass-go/internal/middleware"
	"github.com/wordpass/wordpass-go/internal/repository"
	"github.com/wordpass/wordpass-go/internal/service"
	"github.com/wordpass/wordpass-go/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	words := wordlist.Load()
	if cfg.WordListPath != "" {
		words = wordlist.LoadFile(cfg.WordListPath)
	}
	slog.Info("word list loaded", "source", words.Source(), "size", words.Len())

	src, err := crypto.NewSystemSource()
	if err != nil {
		slog.Error("random source unavailable", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(m))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())

	// Preferences need the database; without it generation falls back to
	// the built-in defaults.
	var defaults service.DefaultsProvider
	var prefsHandler *handler.PreferencesHandler

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, preference routes disabled", "error", err)
	} else {
		prefsRepo := repository.NewPreferencesRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := prefsRepo.EnsureSchema(ctx)
		cancel()

		if err != nil {
			slog.Warn("preferences schema unavailable, preference routes disabled", "error", err)
			db.Close()
		} else {
			defer db.Close()
			prefsService := service.NewPreferencesService(prefsRepo)
			prefsHandler = handler.NewPreferencesHandler(prefsService)
			defaults = prefsService
		}
	}

	genService := service.NewGeneratorService(words, src, defaults, m)
	genHandler := handler.NewGeneratorHandler(genService)

	r.Get("/api/v1/wordlist", genHandler.HandleWordList)
	r.Post("/api/v1/entropy", genHandler.HandleEstimate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	var authEnabled bool
	if cfg.AdminKey == "" {
		slog.Warn("ADMIN_KEY not set, token route disabled")
	} else {
		authService, err := service.NewAuthService(cfg.AdminKey, cfg.JWTSecret, cfg.JWTExpiry)
		if err != nil {
			slog.Error("auth setup failed", "error", err)
			os.Exit(1)
		}
		authHandler := handler.NewAuthHandler(authService)
		authEnabled = true

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(1, 5))
			r.Post("/api/v1/auth/token", authHandler.HandleToken)
		})
	}

	if prefsHandler != nil {
		r.Get("/api/v1/preferences", prefsHandler.HandleGet)

		if authEnabled {
			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(cfg.JWTSecret, crypto.ScopePreferences))
				r.Put("/api/v1/preferences", prefsHandler.HandleUpdate)
				r.Post("/api/v1/preferences/reset", prefsHandler.HandleReset)
			})
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
