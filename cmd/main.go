package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/Ifrah-c/personal-note-app/docs"
	"github.com/Ifrah-c/personal-note-app/internal/config"
	"github.com/Ifrah-c/personal-note-app/internal/database"
	"github.com/Ifrah-c/personal-note-app/internal/jwt"
	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/middlewares"
	"github.com/Ifrah-c/personal-note-app/internal/repositories"
	"github.com/Ifrah-c/personal-note-app/internal/router"
	"github.com/Ifrah-c/personal-note-app/internal/services"
	"github.com/Ifrah-c/personal-note-app/internal/sessions"
	"github.com/Ifrah-c/personal-note-app/internal/views"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title personal-note-app
// @version 1.0.0
// @description Personal notes web application with session-based login
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// sessionStore is satisfied by both session backends.
type sessionStore interface {
	services.SessionWriter
	middlewares.SessionReader
}

// run initializes the logger, database, session store and HTTP server.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	log.Infow("Connecting to database", "driver", cfg.DBDriver)
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()
	if cfg.DBDriver == config.DriverPostgres {
		db.SetMaxOpenConns(cfg.PgMaxOpenConns)
		db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	}

	if err := database.Migrate(ctx, db, cfg.DBDriver); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.SecretKey),
		jwt.WithExpiration(cfg.SessionTTL),
		jwt.WithCookieName(cfg.SessionCookieName),
		jwt.WithSecureCookie(cfg.SessionCookieSecure),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	noteReadRepo := repositories.NewNoteReadRepository(db)
	noteWriteRepo := repositories.NewNoteWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, store, tokens)
	noteService := services.NewNoteService(noteReadRepo, noteWriteRepo)

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	handler := router.New(authService, noteService, tokens, store, renderer, log,
		fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr()),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newSessionStore connects the configured session backend. The returned func
// releases it.
func newSessionStore(ctx context.Context, cfg *config.Config) (sessionStore, func(), error) {
	if cfg.SessionStore == config.SessionStoreMemory {
		logger.Log.Info("Using in-memory session store")
		return sessions.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis connection error: %w", err)
	}
	logger.Log.Infow("Using Redis session store", "addr", cfg.RedisAddr(), "db", cfg.RedisDB)
	return sessions.NewRedisStore(rdb, cfg.SessionTTL), func() { _ = rdb.Close() }, nil
}
