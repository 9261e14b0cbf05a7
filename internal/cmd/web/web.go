// Package web parses web command flags and launches the form service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/renegocia/internal/platform/cmd"
	"github.com/louisbranch/renegocia/internal/platform/i18n/catalog"
	"github.com/louisbranch/renegocia/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"RENEGOCIA_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	StoreDriver   string `env:"RENEGOCIA_WEB_STORE_DRIVER" envDefault:"sqlite"`
	DBPath        string `env:"RENEGOCIA_WEB_DB_PATH" envDefault:"data/web.db"`
	RedisAddr     string `env:"RENEGOCIA_WEB_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"RENEGOCIA_WEB_REDIS_PASSWORD"`
	RedisDB       int    `env:"RENEGOCIA_WEB_REDIS_DB" envDefault:"0"`
	Timezone      string `env:"RENEGOCIA_WEB_TIMEZONE" envDefault:"America/Sao_Paulo"`
	Locale        string `env:"RENEGOCIA_WEB_LOCALE" envDefault:"pt-BR"`
	HTMXURL       string `env:"RENEGOCIA_WEB_HTMX_URL" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoreDriver, "store-driver", cfg.StoreDriver, "Slot store driver (sqlite or redis)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA time zone for displayed timestamps")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Catalog locale for page copy")
	fs.StringVar(&cfg.HTMXURL, "htmx-url", cfg.HTMXURL, "HTMX script URL; empty disables live updates")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	locale := strings.TrimSpace(cfg.Locale)
	if !bundle.HasLocale(locale) {
		return fmt.Errorf("locale %q is not in the catalog", locale)
	}

	store, err := web.OpenStore(ctx, web.StoreConfig{
		Driver:        cfg.StoreDriver,
		SQLitePath:    cfg.DBPath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("open slot store: %w", err)
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Store:     store,
		Logger:    log.Default(),
		Localizer: bundle.Printer(locale),
		Lang:      locale,
		Location:  location,
		HTMXURL:   cfg.HTMXURL,
	})
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
