// Package web parses dashboard server flags and runs the HTTP front end.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/invoicer/internal/platform/config"
	"github.com/louisbranch/invoicer/internal/platform/otel"
	"github.com/louisbranch/invoicer/internal/storage/sqlite"
	"github.com/louisbranch/invoicer/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"INVOICER_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"INVOICER_WEB_DB"        envDefault:"invoices.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the invoice store and serves the dashboard until ctx is
// cancelled.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "invoicer-web")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open invoice store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close invoice store: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr}, store)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
