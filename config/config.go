// Package config loads the settings of the enumsdl tool from the environment.
package config

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

// Config holds defaults that command line flags may override.
type Config struct {
	// OutputURL is a gocloud.dev bucket URL such as file:///srv/schema or
	// mem://. Empty writes to stdout. ENV: GQLENUM_OUTPUT_URL
	OutputURL string `env:"GQLENUM_OUTPUT_URL"`
	// OutputKey is the blob key the SDL is written under. ENV: GQLENUM_OUTPUT_KEY
	OutputKey string `env:"GQLENUM_OUTPUT_KEY,default=schema.graphql"`
}

// Load decodes Config from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	if cfg.OutputKey == "" {
		cfg.OutputKey = "schema.graphql"
	}
	return cfg, nil
}
