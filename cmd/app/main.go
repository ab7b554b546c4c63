package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/clinic-cms/config"
	_ "github.com/daniilsolovey/clinic-cms/docs"
	"github.com/daniilsolovey/clinic-cms/internal/app"
	"github.com/daniilsolovey/clinic-cms/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations and exit")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Clinic CMS API
// @version 1.0
// @description Public read API of the clinic site
// @host localhost:3000
// @BasePath /

func main() {
	// .env is optional, flags fall back to the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	flag.Parse()

	lg = newLogger(*flDebug)
	slog.SetDefault(lg)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}

	ctx := context.Background()

	if *flMigrate {
		exitOnError(db.Migrate(ctx, cfg.DatabaseURL()))
		lg.Info("migrations applied")
		return
	}

	client, err := db.Connect(ctx, &cfg.Database)
	exitOnError(err)

	service, err := app.New(ctx, cfg, client, lg)
	if err != nil {
		_ = client.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
