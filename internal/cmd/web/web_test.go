package web

import (
	"context"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.StoreDriver != "sqlite" {
		t.Fatalf("StoreDriver = %q, want %q", cfg.StoreDriver, "sqlite")
	}
	if cfg.DBPath != "data/web.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/web.db")
	}
	if cfg.Timezone != "America/Sao_Paulo" {
		t.Fatalf("Timezone = %q, want %q", cfg.Timezone, "America/Sao_Paulo")
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, "pt-BR")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("RENEGOCIA_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("RENEGOCIA_WEB_STORE_DRIVER", "redis")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-redis-addr", "cache:6380",
		"-timezone", "UTC",
		"-htmx-url", "",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.StoreDriver != "redis" {
		t.Fatalf("StoreDriver = %q, want %q", cfg.StoreDriver, "redis")
	}
	if cfg.RedisAddr != "cache:6380" {
		t.Fatalf("RedisAddr = %q, want %q", cfg.RedisAddr, "cache:6380")
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("Timezone = %q, want %q", cfg.Timezone, "UTC")
	}
	if cfg.HTMXURL != "" {
		t.Fatalf("HTMXURL = %q, want empty", cfg.HTMXURL)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	if _, err := ParseConfig(fs, []string{"-game-addr", "x"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunRejectsUnknownTimezone(t *testing.T) {
	err := run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Timezone: "Mars/Olympus", Locale: "pt-BR"})
	if err == nil || !strings.Contains(err.Error(), "load timezone") {
		t.Fatalf("run() error = %v, want timezone error", err)
	}
}

func TestRunRejectsUnknownLocale(t *testing.T) {
	err := run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Timezone: "UTC", Locale: "xx-YY"})
	if err == nil || !strings.Contains(err.Error(), "not in the catalog") {
		t.Fatalf("run() error = %v, want locale error", err)
	}
}
