// Package service runs the one-shot valuation pipeline: load both
// sources, filter to the franchise, left-join on normalized name,
// derive valuations and archetypes, rank by cost efficiency, then
// render the console report and write the spreadsheet export.
package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kevinvalenciaa/QSAO-competition/internal/adapters/report"
	"github.com/kevinvalenciaa/QSAO-competition/internal/adapters/spreadsheet"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/archetype"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/dedupe"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/rank"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/valuation"
	"github.com/kevinvalenciaa/QSAO-competition/pkg/logger"
	"github.com/kevinvalenciaa/QSAO-competition/pkg/metrics"
)

const rosterSizeHint = 20 // active roster upper bound, used to presize maps

// Service orchestrates one pipeline run. It holds no state between
// runs; everything is request-scoped.
type Service struct {
	salaryFile   string
	statsFile    string
	team         string
	seasonColumn string
	exportPath   string
	tableMode    report.Mode

	valuer    *valuation.Valuer
	contracts []model.ContractStatus
	out       io.Writer
	log       logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSources sets the salary and stats workbook paths.
func WithSources(salaryFile, statsFile string) Option {
	return func(s *Service) {
		if salaryFile != "" {
			s.salaryFile = salaryFile
		}
		if statsFile != "" {
			s.statsFile = statsFile
		}
	}
}

// WithTeam sets the franchise code both sources are filtered to.
func WithTeam(code string) Option {
	return func(s *Service) {
		if code != "" {
			s.team = code
		}
	}
}

// WithSeasonColumn sets the salary column label to analyze.
func WithSeasonColumn(label string) Option {
	return func(s *Service) {
		if label != "" {
			s.seasonColumn = label
		}
	}
}

// WithExportPath sets where the valued roster spreadsheet is written.
func WithExportPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.exportPath = path
		}
	}
}

// WithTableMode sets the console table format.
func WithTableMode(m report.Mode) Option {
	return func(s *Service) { s.tableMode = m }
}

// WithValuer sets a custom Valuer (e.g. alternative stat weights).
func WithValuer(v *valuation.Valuer) Option {
	return func(s *Service) {
		if v != nil {
			s.valuer = v
		}
	}
}

// WithContracts injects the static contract-status table rendered at
// the end of the report. The table is data, not derivation; swapping it
// per season needs no code change.
func WithContracts(statuses []model.ContractStatus) Option {
	return func(s *Service) { s.contracts = statuses }
}

// WithOutput directs the console report somewhere other than stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		salaryFile:   "QSAO CASECOMP NBASALARY.xlsx",
		statsFile:    "QSAO CASECOMP PLAYERDATA.xlsx",
		team:         "MIA",
		seasonColumn: "2024-25",
		exportPath:   "miami_heat_valuation.xlsx",
		tableMode:    report.ASCII,
		valuer:       valuation.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the full pipeline once. Load errors are fatal; every
// data-quality problem downstream of loading (coercion failures, join
// misses, duplicate keys) is recovered locally and surfaced through
// logs and counters.
func (s *Service) Run(ctx context.Context) error {
	if s.log == nil {
		s.log = logger.Get()
	}
	runID := uuid.NewString()
	start := time.Now()

	s.log.Info(ctx, "starting valuation run",
		logger.String("run_id", runID),
		logger.String("team", s.team),
		logger.String("season", s.seasonColumn),
	)

	salaries, err := spreadsheet.LoadSalaries(ctx, s.salaryFile, s.team, s.seasonColumn)
	if err != nil {
		return err
	}
	stats, err := spreadsheet.LoadStats(ctx, s.statsFile, s.team)
	if err != nil {
		return err
	}
	s.log.Info(ctx, "sources loaded",
		logger.String("run_id", runID),
		logger.Int("salary_rows", len(salaries)),
		logger.Int("stat_rows", len(stats)),
	)

	sortBySalary(salaries)
	merged := s.merge(ctx, salaries, stats)

	records := make([]model.RosterRecord, len(merged))
	for i, m := range merged {
		records[i] = model.RosterRecord{
			Merged:    m,
			Valuation: s.valuer.Value(m),
			Archetype: archetype.Classify(m.Stats),
		}
		metrics.RecordPlayerValued()
		metrics.RecordArchetype(records[i].Archetype)
	}

	records = orderByValue(records)

	r := report.NewRenderer(
		report.WithWriter(s.out),
		report.WithMode(s.tableMode),
		report.WithSeasonColumn(s.seasonColumn),
	)
	r.Valuation(s.team, records)
	r.ArchetypeBreakdown(records)
	r.Memberships(records)
	r.DescriptiveStats(records)
	if len(s.contracts) > 0 {
		r.Contracts(s.team, "2025", s.contracts)
	}

	if err := spreadsheet.WriteRoster(ctx, s.exportPath, s.seasonColumn, records); err != nil {
		return err
	}

	metrics.UpdateRunDuration(float64(time.Since(start).Milliseconds()))
	s.log.Info(ctx, "run complete",
		logger.String("run_id", runID),
		logger.String("export", s.exportPath),
		logger.Any("metrics", metrics.Summary()),
	)
	return nil
}

// merge left-joins salary rows with stat lines on the normalized-name
// key. Every salary row survives exactly once. When the stats side
// carries duplicate keys the first sheet-order row wins and the rest
// are discarded with a warning; row multiplication is never allowed.
func (s *Service) merge(ctx context.Context, salaries []model.SalaryRow, stats []model.StatLine) []model.MergedPlayer {
	tracker := dedupe.NewInMemoryTracker(dedupe.WithCapacityHint(rosterSizeHint))
	index := make(map[string]model.StatLine, len(stats))
	for _, line := range stats {
		if tracker.SeenAndRecord(ctx, line.JoinKey) {
			metrics.RecordDuplicateJoinKey()
			s.log.Warn(ctx, "duplicate normalized name on stats side; keeping first occurrence",
				logger.String("player", line.Player),
			)
			continue
		}
		index[line.JoinKey] = line
	}

	out := make([]model.MergedPlayer, 0, len(salaries))
	for _, row := range salaries {
		m := model.MergedPlayer{Salary: row}
		if line, ok := index[row.JoinKey]; ok {
			m.Stats = &line
		} else {
			metrics.RecordJoinMiss()
			s.log.Warn(ctx, "no stats match for salary row",
				logger.String("player", row.Name),
			)
		}
		out = append(out, m)
	}
	return out
}

// sortBySalary orders rows by salary descending, missing salaries last,
// name ascending within ties.
func sortBySalary(rows []model.SalaryRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Salary, rows[j].Salary
		switch {
		case a != nil && b != nil && *a != *b:
			return *a > *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		default:
			return rows[i].Name < rows[j].Name
		}
	})
}

// orderByValue ranks records by value per $M (undefined last) and
// returns them in rank order.
func orderByValue(records []model.RosterRecord) []model.RosterRecord {
	entries := make([]rank.Entry, len(records))
	for i, rec := range records {
		entries[i] = rank.Entry{
			ID:    i,
			Name:  rec.Merged.Salary.Name,
			Score: rec.Valuation.ValuePerMillion,
		}
	}
	ordered := rank.Order(entries)

	out := make([]model.RosterRecord, len(records))
	for pos, e := range ordered {
		rec := records[e.ID]
		rec.Rank = e.Rank
		out[pos] = rec
	}
	return out
}
