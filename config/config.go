package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/daniilsolovey/clinic-cms/internal/storage"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// BaseURL is the public site address used in sitemap.xml and robots.txt.
		BaseURL string
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	// Storage is optional, media uploads are disabled when Endpoint is empty.
	Storage storage.Config
	Log     struct {
		SQL bool
	}
}

// Load decodes the TOML file and fills defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.BaseURL == "" {
		c.App.BaseURL = fmt.Sprintf("http://localhost:%d", c.App.Port)
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = auth.DefaultTokenTTL
	}
}

// SetDatabaseURL replaces the database options with the ones from a postgres:// URL.
func (c *Config) SetDatabaseURL(dsn string) error {
	opt, err := pg.ParseURL(dsn)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxRetries = c.Database.MaxRetries
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt
	return nil
}

// DatabaseURL returns the connection string of the database options, as the migrator expects it.
func (c Config) DatabaseURL() string {
	return db.DSN(&c.Database)
}
