// Package rank orders valued players into a cost-efficiency leaderboard.
package rank

import (
	"sort"
)

// Entry is one leaderboard row. Score is the player's value per $M and
// is nil when the metric is undefined (missing or zero salary). ID is a
// caller-assigned index, opaque to the ordering, for mapping an ordered
// entry back to its source record.
type Entry struct {
	Rank  int
	ID    int
	Name  string
	Score *float64
}

// Order sorts entries by score descending and assigns 1-based ranks.
// Undefined scores always sort after every defined score; ties (and the
// undefined block) are broken by name ascending so output is stable
// across runs. The input slice is sorted in place and returned.
func Order(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Score, entries[j].Score
		switch {
		case a != nil && b != nil && *a != *b:
			return *a > *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		default:
			return entries[i].Name < entries[j].Name
		}
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// TopN returns the first n entries of an ordered leaderboard, or all of
// them when fewer exist.
func TopN(entries []Entry, n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// Stat pairs a player name with one nullable statistic.
type Stat struct {
	Name  string
	Value *float64
}

// Leader returns the stat with the highest defined value. The second
// return is false when no entry has a defined value. Ties keep the
// earliest entry so the result is deterministic for a fixed input order.
func Leader(stats []Stat) (Stat, bool) {
	var best Stat
	found := false
	for _, s := range stats {
		if s.Value == nil {
			continue
		}
		if !found || *s.Value > *best.Value {
			best = s
			found = true
		}
	}
	return best, found
}
