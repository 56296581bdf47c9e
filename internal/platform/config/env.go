// Package config backs the INVOICER_* environment configuration shared by
// the CLI and the web binary.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables declared in its `env`
// struct tags. Fields without a matching variable keep their envDefault.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
