// Package model contains domain models passed between layers.
package model

// SalaryRow is one row of the salary source after filtering to the
// target franchise. Salary is nil when the cell failed numeric coercion.
type SalaryRow struct {
	Name    string   // display name as it appears in the salary sheet
	Team    string   // franchise code, e.g. "MIA"
	Salary  *float64 // current-season salary in dollars
	JoinKey string   // normalized name; join artifact, never displayed
}

// StatLine is one row of the per-game statistics source after filtering.
// Every numeric field is nil when the cell was absent or non-numeric.
type StatLine struct {
	Player   string
	Team     string
	Pos      string // one of PG, SG, SF, PF, C
	PTS      *float64
	AST      *float64
	TRB      *float64
	STL      *float64
	BLK      *float64
	TOV      *float64
	FGPct    *float64
	ThreePct *float64
	FTPct    *float64
	JoinKey  string // normalized name; join artifact, never displayed
}

// MergedPlayer is the left-join of a salary row with its stat line.
// Stats is nil when no stats row matched the salary row's join key.
type MergedPlayer struct {
	Salary SalaryRow
	Stats  *StatLine
}

// Valuation holds the derived per-player metrics.
//
// Efficiency is zero (not nil) when any shooting split is missing; that
// zero propagates into ValueScore. BaseScore and ValueScore are nil when
// any box-score input is missing. ValuePerMillion is nil when the salary
// is missing or zero, or when ValueScore is nil.
type Valuation struct {
	Efficiency      float64
	BaseScore       *float64
	ValueScore      *float64
	ValuePerMillion *float64
}

// RosterRecord is a fully derived roster row: the merged sources plus
// valuation, archetype label, and cost-efficiency rank.
type RosterRecord struct {
	Merged    MergedPlayer
	Valuation Valuation
	Archetype string
	Rank      int
}

// ContractStatus is a static, externally researched record describing a
// player's contract situation for the following season. It is supplied
// as literal data and joined to the roster only by eye, never in code.
type ContractStatus struct {
	Player      string
	Pos         string
	Age         float64
	PriorSalary float64 // dollars; zero for two-way deals
	Status      string  // e.g. "Player Option / $19.9M"
	Likelihood  string  // free-agency likelihood tag
	Explanation string
}

// Float returns a pointer to v. Convenience for building nullable fields.
func Float(v float64) *float64 { return &v }
