package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by portal commands.
const EnvPrefix = "EXTRACURRICULAR_PORTAL_"

// ParseEnvWithPrefix loads configuration from environment variables whose
// names are the struct tag names prefixed with EnvPrefix.
func ParseEnvWithPrefix(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
