package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/clinic-cms/config"
	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/daniilsolovey/clinic-cms/internal/rest"
	"github.com/daniilsolovey/clinic-cms/internal/rpc"
	"github.com/daniilsolovey/clinic-cms/internal/storage"
	"github.com/labstack/echo/v4"
)

type App struct {
	DB      *db.Client
	Manager *cms.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

// New wires the database client, media storage, the public REST API and the back-office RPC.
func New(ctx context.Context, cfg config.Config, client *db.Client, logger *slog.Logger) (*App, error) {
	registerDBLogger(client, logger, cfg.Log.SQL)

	var objects cms.ObjectStorage
	if cfg.Storage.Endpoint != "" {
		m, err := storage.NewMinIO(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("init media storage: %w", err)
		}
		objects = m
	} else {
		logger.Warn("media storage is not configured, uploads are disabled")
	}

	issuer, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("init token issuer: %w", err)
	}

	policy, err := auth.NewPolicy()
	if err != nil {
		return nil, fmt.Errorf("init policy: %w", err)
	}

	manager := cms.NewManager(client, objects)

	e := rest.NewHandler(manager, logger, cfg.App.BaseURL).RegisterRoutes()
	rest.RegisterRPC(e, rpc.New(logger, manager, issuer, policy))

	return &App{
		DB:      client,
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}, nil
}

// registerDBLogger forwards client events to the logger. Queries are logged at debug level when enabled.
func registerDBLogger(client *db.Client, logger *slog.Logger, logSQL bool) {
	client.On(db.EventInfo, func(ev db.Event) {
		logger.Debug(ev.Message, "target", ev.Target)
	})
	client.On(db.EventWarn, func(ev db.Event) {
		logger.Warn(ev.Message, "target", ev.Target)
	})
	client.On(db.EventError, func(ev db.Event) {
		logger.Error(ev.Message, "target", ev.Target)
	})

	if !logSQL {
		return
	}
	client.On(db.EventQuery, func(ev db.Event) {
		if ev.Err != nil {
			logger.Debug("query failed", "query", ev.Query, "duration", ev.Duration, "error", ev.Err)
			return
		}
		logger.Debug("query", "query", ev.Query, "duration", ev.Duration)
	})
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.DB.Close())
}
