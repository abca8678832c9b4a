package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) from path, or HEATVAL_CONFIG when path is empty
//  3. env (prefix HEATVAL_)
func Load(ctx context.Context, path string) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("HEATVAL_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: HEATVAL_TEAM_CODE, HEATVAL_OUTPUT_FILE, ...
	// Map env keys like HEATVAL_TEAM_CODE -> team_code (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("HEATVAL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "heatval_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.SalaryFile == "":
		return fmt.Errorf("%w: salary_file must not be empty", ErrInvalidConfig)
	case c.StatsFile == "":
		return fmt.Errorf("%w: stats_file must not be empty", ErrInvalidConfig)
	case c.TeamCode == "":
		return fmt.Errorf("%w: team_code must not be empty", ErrInvalidConfig)
	case c.SeasonColumn == "":
		return fmt.Errorf("%w: season_column must not be empty", ErrInvalidConfig)
	case c.OutputFile == "":
		return fmt.Errorf("%w: output_file must not be empty", ErrInvalidConfig)
	}
	switch c.TableFormat {
	case "ascii", "markdown":
	default:
		return fmt.Errorf("%w: table_format must be ascii or markdown, got %q", ErrInvalidConfig, c.TableFormat)
	}
	return nil
}
