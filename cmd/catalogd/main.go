// Package main is the entry point for the catalog API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"catalogd/internal/auth"
	"catalogd/internal/cache"
	"catalogd/internal/config"
	"catalogd/internal/database"
	"catalogd/internal/handlers"
	"catalogd/internal/middleware"
	"catalogd/internal/policy"
	"catalogd/internal/router"
	"catalogd/internal/store"
	"catalogd/internal/token"
)

func main() {
	// Optional .env for local development; real environments set variables
	// directly.
	_ = godotenv.Load()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger. JSON in production, text in development.
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. The API runs fine without it, just uncached.
	var catalogCache *cache.CatalogCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, serving without cache", "error", err)
	} else {
		defer valkeyClient.Close()
		catalogCache = cache.NewCatalogCache(valkeyClient, cache.DefaultTTL)
	}

	// Initialize data stores.
	accountStore := store.NewAccountStore(db)
	claimStore := store.NewClaimStore(db)
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)

	// Token codec and the login flow built on it.
	codec, err := token.NewCodec(token.Config{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	})
	if err != nil {
		slog.Error("failed to initialize token codec", "error", err)
		os.Exit(1)
	}
	authenticator := auth.NewAuthenticator(accountStore, claimStore, codec)

	// Login attempts are limited per client IP.
	limiter := middleware.NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(authenticator)
	categoryHandlers := handlers.NewCategories(categoryStore, catalogCache)
	productHandlers := handlers.NewProducts(productStore, categoryStore)
	employeeHandlers := handlers.NewEmployees(accountStore, claimStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(codec, policy.Default(), limiter,
		authHandlers, categoryHandlers, productHandlers, employeeHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
