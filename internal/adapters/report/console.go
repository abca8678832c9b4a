// Package report renders the human-readable run output: the valuation
// table, archetype breakdowns, descriptive stats, and the static
// contract-status table. Formatting only; nothing here derives data.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/archetype"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/rank"
)

const undefinedCell = "n/a"

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithWriter directs output somewhere other than stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.w = w
		}
	}
}

// WithMode sets the table format.
func WithMode(m Mode) Option {
	return func(r *Renderer) { r.mode = m }
}

// WithSeasonColumn sets the salary column label used in headings.
func WithSeasonColumn(label string) Option {
	return func(r *Renderer) {
		if label != "" {
			r.seasonColumn = label
		}
	}
}

// Renderer writes the report sections in a fixed order.
type Renderer struct {
	w            io.Writer
	mode         Mode
	seasonColumn string
}

// NewRenderer creates a Renderer with configuration options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		w:            os.Stdout,
		mode:         ASCII,
		seasonColumn: "2024-25",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Valuation renders the per-player valuation table in record order
// (callers pass records already ranked by value per $M).
func (r *Renderer) Valuation(team string, records []model.RosterRecord) {
	fmt.Fprintf(r.w, "\n%s Player Valuation\n", team)

	t := newTable(r.mode)
	t.header("Rank", "Name", "Pos", r.seasonColumn, "PTS", "AST", "TRB", "STL", "BLK", "TOV",
		"FG%", "3P%", "FT%", "Value Score", "Value per $M", "Archetype")
	for _, rec := range records {
		s := rec.Merged.Stats
		if s == nil {
			s = &model.StatLine{}
		}
		t.row(rec.Rank, rec.Merged.Salary.Name, s.Pos,
			money(rec.Merged.Salary.Salary),
			num(s.PTS, 1), num(s.AST, 1), num(s.TRB, 1), num(s.STL, 1), num(s.BLK, 1), num(s.TOV, 1),
			num(s.FGPct, 3), num(s.ThreePct, 3), num(s.FTPct, 3),
			num(rec.Valuation.ValueScore, 2), num(rec.Valuation.ValuePerMillion, 4),
			rec.Archetype)
	}
	t.rightAlign(1, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	fmt.Fprintln(r.w, t.render())
}

// ArchetypeBreakdown renders assignment counts in rule order, skipping
// labels with no players.
func (r *Renderer) ArchetypeBreakdown(records []model.RosterRecord) {
	fmt.Fprintln(r.w, "\nArchetype Breakdown")

	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Archetype]++
	}

	t := newTable(r.mode)
	t.header("Archetype", "Player Count")
	for _, label := range archetype.Labels() {
		if counts[label] > 0 {
			t.row(label, counts[label])
		}
	}
	t.rightAlign(2)
	fmt.Fprintln(r.w, t.render())
}

// Memberships lists the players assigned to each archetype, in rule
// order, players in record order.
func (r *Renderer) Memberships(records []model.RosterRecord) {
	fmt.Fprintln(r.w, "\nArchetype Breakdown with Player Names")

	byLabel := make(map[string][]string)
	for _, rec := range records {
		byLabel[rec.Archetype] = append(byLabel[rec.Archetype], rec.Merged.Salary.Name)
	}

	for _, label := range archetype.Labels() {
		names := byLabel[label]
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "\n%s (%d players):\n", label, len(names))
		for _, name := range names {
			fmt.Fprintf(r.w, "   - %s\n", name)
		}
	}
}

// DescriptiveStats renders roster totals and single-stat leaders.
func (r *Renderer) DescriptiveStats(records []model.RosterRecord) {
	fmt.Fprintln(r.w, "\nRoster Overview")

	var total float64
	var salaried int
	for _, rec := range records {
		if rec.Merged.Salary.Salary != nil {
			total += *rec.Merged.Salary.Salary
			salaried++
		}
	}

	t := newTable(r.mode)
	t.header("Measure", "Value")
	t.row("Total salary", fmt.Sprintf("$%.0f", total))
	if salaried > 0 {
		t.row("Average salary", fmt.Sprintf("$%.0f", total/float64(salaried)))
	} else {
		t.row("Average salary", undefinedCell)
	}
	for _, lead := range []struct {
		measure string
		pick    func(*model.StatLine) *float64
	}{
		{"Points leader", func(s *model.StatLine) *float64 { return s.PTS }},
		{"Rebounds leader", func(s *model.StatLine) *float64 { return s.TRB }},
		{"Assists leader", func(s *model.StatLine) *float64 { return s.AST }},
	} {
		stats := make([]rank.Stat, 0, len(records))
		for _, rec := range records {
			if rec.Merged.Stats == nil {
				continue
			}
			stats = append(stats, rank.Stat{Name: rec.Merged.Salary.Name, Value: lead.pick(rec.Merged.Stats)})
		}
		if best, ok := rank.Leader(stats); ok {
			t.row(lead.measure, fmt.Sprintf("%s (%.1f)", best.Name, *best.Value))
		} else {
			t.row(lead.measure, undefinedCell)
		}
	}
	fmt.Fprintln(r.w, t.render())
}

// Contracts renders the static next-season contract-status table.
func (r *Renderer) Contracts(team, season string, statuses []model.ContractStatus) {
	fmt.Fprintf(r.w, "\n%s %s Contract Status Overview\n", team, season)

	t := newTable(r.mode)
	t.header("Player", "Pos", "Age", "Status", "Free Agent?", "Explanation")
	for _, cs := range statuses {
		t.row(cs.Player, cs.Pos, fmt.Sprintf("%.1f", cs.Age), cs.Status, cs.Likelihood, cs.Explanation)
	}
	t.rightAlign(3)
	fmt.Fprintln(r.w, t.render())
}

// money formats a nullable salary without decimals.
func money(v *float64) string {
	if v == nil {
		return undefinedCell
	}
	return fmt.Sprintf("%.0f", *v)
}

// num formats a nullable stat with the given precision.
func num(v *float64, prec int) string {
	if v == nil {
		return undefinedCell
	}
	return fmt.Sprintf("%.*f", prec, *v)
}
