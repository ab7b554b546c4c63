package db

import (
	"context"
	"embed"
	"fmt"
	"net/url"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrate applies embedded goose migrations to the database at dsn.
func Migrate(ctx context.Context, dsn string) error {
	config, err := pgx.ParseConnectionString(dsn)
	if err != nil {
		return &InitializationError{err: fmt.Errorf("parse connection string: %w", err)}
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return &InitializationError{err: fmt.Errorf("ping db: %w", err)}
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return &InitializationError{err: fmt.Errorf("goose up: %w", err)}
	}

	return nil
}

// DSN builds a postgres connection URL from go-pg options.
func DSN(opts *pg.Options) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   opts.Addr,
		Path:   "/" + opts.Database,
	}
	if opts.User != "" {
		u.User = url.UserPassword(opts.User, opts.Password)
	}
	if opts.TLSConfig == nil {
		u.RawQuery = "sslmode=disable"
	}
	return u.String()
}
