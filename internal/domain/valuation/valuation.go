// Package valuation computes composite value metrics from merged roster rows.
package valuation

import (
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
)

// Default stat weights for the composite score.
const (
	defaultAssistWeight  = 1.5
	defaultReboundWeight = 1.2
	defaultStealWeight   = 2.0
	defaultBlockWeight   = 2.0
	shootingSplits       = 3
	dollarsPerMillion    = 1e6
)

// Option applies a configuration option to the Valuer.
type Option func(*Valuer)

// WithWeights overrides the box-score weights. Zero-value fields keep
// their defaults so callers can override selectively.
func WithWeights(assist, rebound, steal, block float64) Option {
	return func(v *Valuer) {
		if assist > 0 {
			v.assistWeight = assist
		}
		if rebound > 0 {
			v.reboundWeight = rebound
		}
		if steal > 0 {
			v.stealWeight = steal
		}
		if block > 0 {
			v.blockWeight = block
		}
	}
}

// Valuer derives per-player value metrics. It is pure: one input row in,
// one Valuation out, rows independent of each other.
type Valuer struct {
	assistWeight  float64
	reboundWeight float64
	stealWeight   float64
	blockWeight   float64
}

// New creates a Valuer with configuration options.
func New(opts ...Option) *Valuer {
	v := &Valuer{
		assistWeight:  defaultAssistWeight,
		reboundWeight: defaultReboundWeight,
		stealWeight:   defaultStealWeight,
		blockWeight:   defaultBlockWeight,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Value computes the Valuation for one merged row.
//
// Efficiency is the mean of the three shooting splits only when all
// three are present; otherwise it is exactly zero, which zeroes the
// value score even when the box-score stats are complete. The base
// score, by contrast, is nil when any of its inputs is nil. Value per
// $M is nil when the salary is nil or zero so downstream ordering can
// place those rows deliberately instead of dividing by zero.
func (v *Valuer) Value(p model.MergedPlayer) model.Valuation {
	var out model.Valuation
	if p.Stats == nil {
		return out
	}
	s := p.Stats

	if s.FGPct != nil && s.ThreePct != nil && s.FTPct != nil {
		out.Efficiency = (*s.FGPct + *s.ThreePct + *s.FTPct) / shootingSplits
	}

	if s.PTS == nil || s.AST == nil || s.TRB == nil || s.STL == nil || s.BLK == nil || s.TOV == nil {
		return out
	}
	base := *s.PTS +
		v.assistWeight**s.AST +
		v.reboundWeight**s.TRB +
		v.stealWeight**s.STL +
		v.blockWeight**s.BLK -
		*s.TOV
	out.BaseScore = model.Float(base)
	out.ValueScore = model.Float(base * out.Efficiency)

	if p.Salary.Salary != nil && *p.Salary.Salary != 0 {
		out.ValuePerMillion = model.Float(*out.ValueScore / (*p.Salary.Salary / dollarsPerMillion))
	}
	return out
}
