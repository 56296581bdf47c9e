package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want localhost:8080", cfg.HTTPAddr)
	}
	if cfg.DBPath != "invoices.db" {
		t.Fatalf("DBPath = %q, want invoices.db", cfg.DBPath)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("INVOICER_WEB_HTTP_ADDR", "0.0.0.0:9999")
	t.Setenv("INVOICER_WEB_DB", "/var/lib/invoicer/invoices.db")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9999" {
		t.Fatalf("HTTPAddr = %q, want env override", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/var/lib/invoicer/invoices.db" {
		t.Fatalf("DBPath = %q, want env override", cfg.DBPath)
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("INVOICER_WEB_HTTP_ADDR", "0.0.0.0:9999")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:8087"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8087" {
		t.Fatalf("HTTPAddr = %q, want flag override", cfg.HTTPAddr)
	}
}
