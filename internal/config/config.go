// Package config defines run configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Defaults alone reproduce the canonical run; no flag is ever required.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration for one pipeline run.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SalaryFile is the path to the salary spreadsheet.
	SalaryFile string `koanf:"salary_file"`

	// StatsFile is the path to the per-game statistics spreadsheet.
	StatsFile string `koanf:"stats_file"`

	// TeamCode restricts both sources to one franchise, e.g. "MIA".
	TeamCode string `koanf:"team_code"`

	// SeasonColumn is the label of the salary column to analyze.
	SeasonColumn string `koanf:"season_column"`

	// OutputFile is the spreadsheet the valued roster is exported to.
	// It is overwritten on every run.
	OutputFile string `koanf:"output_file"`

	// TableFormat selects console rendering: "ascii" or "markdown".
	TableFormat string `koanf:"table_format"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		SalaryFile:   "QSAO CASECOMP NBASALARY.xlsx",
		StatsFile:    "QSAO CASECOMP PLAYERDATA.xlsx",
		TeamCode:     "MIA",
		SeasonColumn: "2024-25",
		OutputFile:   "miami_heat_valuation.xlsx",
		TableFormat:  "ascii",
	}
}
