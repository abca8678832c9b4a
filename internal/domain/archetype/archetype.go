// Package archetype assigns each player exactly one role label from an
// ordered rule table.
package archetype

import (
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
)

// The six role labels. Every classification returns one of these.
const (
	ThreeAndDWing      = "3&D Wing"
	PrimaryBallHandler = "Primary Ball Handler"
	StretchBig         = "Stretch Big"
	RimProtector       = "Rim Protector"
	ScoringGuard       = "Scoring Guard"
	Versatile          = "Versatile / Role Player"
)

// rule pairs a predicate with the label it assigns.
type rule struct {
	label string
	match func(*model.StatLine) bool
}

// rules is evaluated top to bottom; the first match wins. Several
// predicates overlap (a center can satisfy both the stretch-big and
// rim-protector rules), so the ordering is part of the contract.
var rules = []rule{
	{ThreeAndDWing, func(s *model.StatLine) bool {
		return posIn(s, "SG", "SF") && gt(s.ThreePct, 0.36) && gt(s.STL, 0.7)
	}},
	{PrimaryBallHandler, func(s *model.StatLine) bool {
		return posIn(s, "PG") && gt(s.AST, 4)
	}},
	{StretchBig, func(s *model.StatLine) bool {
		return posIn(s, "PF", "C") && gt(s.ThreePct, 0.33) && gt(s.BLK, 0.5)
	}},
	{RimProtector, func(s *model.StatLine) bool {
		return posIn(s, "C") && gt(s.BLK, 1.0) && gt(s.TRB, 6)
	}},
	{ScoringGuard, func(s *model.StatLine) bool {
		return posIn(s, "SG", "PG") && gt(s.PTS, 15) && lt(s.AST, 4)
	}},
}

// Classify returns the first matching label for the player's stat line,
// or Versatile when no rule matches (including a nil stat line from a
// join miss). Total: never errors, always one of the six labels.
func Classify(s *model.StatLine) string {
	if s == nil {
		return Versatile
	}
	for _, r := range rules {
		if r.match(s) {
			return r.label
		}
	}
	return Versatile
}

// Labels returns the six labels in rule-evaluation order, catch-all last.
func Labels() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.label)
	}
	return append(out, Versatile)
}

func posIn(s *model.StatLine, positions ...string) bool {
	for _, p := range positions {
		if s.Pos == p {
			return true
		}
	}
	return false
}

// gt and lt treat a nil operand as failing the comparison, so missing
// stats fall through toward the catch-all instead of coercing to zero.
func gt(v *float64, threshold float64) bool { return v != nil && *v > threshold }

func lt(v *float64, threshold float64) bool { return v != nil && *v < threshold }
