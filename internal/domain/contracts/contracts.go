// Package contracts holds the static next-season contract-status table.
//
// The records are researched by hand each offseason; they are input
// data, not derived from the roster sources, and are joined to the
// valuation output only by the reader's eye.
package contracts

import (
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
)

// Free-agency likelihood tags used in the table.
const (
	ConfirmedFA = "Confirmed FA (RFA)"
	PotentialFA = "Potential FA"
	LikelyFA    = "Likely FA"
)

// heat2025 is the 2025 offseason outlook for the Miami Heat roster.
var heat2025 = []model.ContractStatus{
	{
		Player:      "Duncan Robinson",
		Pos:         "SF",
		Age:         30.9,
		PriorSalary: 18000000,
		Status:      "Player Option / $19.9M",
		Likelihood:  PotentialFA,
		Explanation: "Becomes UFA only if he opts out of his $19.9M player option",
	},
	{
		Player:      "Davion Mitchell",
		Pos:         "PG",
		Age:         26.5,
		PriorSalary: 5237879,
		Status:      "Restricted FA / Bird",
		Likelihood:  ConfirmedFA,
		Explanation: "Restricted free agent; Heat can match outside offers",
	},
	{
		Player:      "Jaime Jaquez Jr.",
		Pos:         "SF",
		Age:         24.1,
		PriorSalary: 4249285,
		Status:      "Club Option / $3.9M",
		Likelihood:  PotentialFA,
		Explanation: "Only becomes FA if Heat decline team option",
	},
	{
		Player:      "Keshad Johnson",
		Pos:         "PF",
		Age:         23.8,
		PriorSalary: 1340130,
		Status:      "Club Option / $2.0M",
		Likelihood:  PotentialFA,
		Explanation: "Only becomes FA if Heat decline team option",
	},
	{
		Player:      "Isaiah Stevens",
		Pos:         "PG",
		Age:         24.3,
		PriorSalary: 0,
		Status:      "Two-Way RFA",
		Likelihood:  ConfirmedFA,
		Explanation: "Two-way contract expires; Heat can match offers",
	},
	{
		Player:      "Josh Christopher",
		Pos:         "SG",
		Age:         23.2,
		PriorSalary: 0,
		Status:      "Two-Way RFA",
		Likelihood:  ConfirmedFA,
		Explanation: "Two-way contract expires; Heat can match offers",
	},
	{
		Player:      "Dru Smith",
		Pos:         "SG",
		Age:         27.2,
		PriorSalary: 0,
		Status:      "Unclear",
		Likelihood:  LikelyFA,
		Explanation: "Contract details unclear; likely expiring or two-way deal",
	},
}

// NextSeason returns the curated contract-status records. The slice is
// a copy so callers cannot mutate the table between runs.
func NextSeason() []model.ContractStatus {
	out := make([]model.ContractStatus, len(heat2025))
	copy(out, heat2025)
	return out
}
