// heatval runs the roster valuation pipeline: it loads the salary and
// per-game statistics workbooks, joins them on normalized player names,
// derives value metrics and archetypes, prints the report tables, and
// writes the valued roster to a spreadsheet.
//
// Running with no flags reproduces the canonical Miami Heat analysis;
// every input is also configurable via YAML file or HEATVAL_* env vars.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kevinvalenciaa/QSAO-competition/internal/adapters/report"
	service "github.com/kevinvalenciaa/QSAO-competition/internal/app"
	"github.com/kevinvalenciaa/QSAO-competition/internal/config"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/contracts"
	"github.com/kevinvalenciaa/QSAO-competition/pkg/logger"
)

var rootFlags struct {
	configPath string
	output     string
	format     string
}

var rootCmd = &cobra.Command{
	Use:   "heatval",
	Short: "Value and classify one franchise's roster from salary and stats spreadsheets",
	Long: `heatval joins a salary workbook with a per-game statistics workbook on
normalized player names, computes a composite value score and a value
per $M of salary for each player, assigns one of six archetypes, and
prints valuation, archetype, and contract-status tables. The merged
roster is also exported to a spreadsheet, overwritten each run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&rootFlags.configPath, "config", "", "Path to YAML config (default: $HEATVAL_CONFIG)")
	f.StringVarP(&rootFlags.output, "output", "o", "", "Export spreadsheet path (overrides config)")
	f.StringVar(&rootFlags.format, "format", "", "Console table format: ascii or markdown (overrides config)")
}

func run(cmd *cobra.Command, _ []string) error {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return err
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env), then apply
	// flag overrides on top.
	cfg, err := config.Load(ctx, rootFlags.configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return err
	}
	if rootFlags.output != "" {
		cfg.OutputFile = rootFlags.output
	}
	if rootFlags.format != "" {
		cfg.TableFormat = rootFlags.format
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithSources(cfg.SalaryFile, cfg.StatsFile),
		service.WithTeam(cfg.TeamCode),
		service.WithSeasonColumn(cfg.SeasonColumn),
		service.WithExportPath(cfg.OutputFile),
		service.WithTableMode(report.ParseMode(cfg.TableFormat)),
		service.WithContracts(contracts.NextSeason()),
	)
	if err := svc.Run(ctx); err != nil {
		log.Error(ctx, "valuation run failed", logger.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
