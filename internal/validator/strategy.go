package validator

import (
	"sort"

	"github.com/finetype/finetype/internal/taxonomy"
)

// Strategy names one of the four ways a failing value in a column can
// be repaired once Validate has flagged it.
type Strategy string

const (
	// StrategyQuarantine is the default: failing values are set aside
	// and reported, but the column's other values are untouched.
	StrategyQuarantine Strategy = "quarantine"
	// StrategySetNull replaces a failing value with the empty string.
	StrategySetNull Strategy = "set_null"
	// StrategyForwardFill replaces a failing value with the nearest
	// preceding value that itself passes validation.
	StrategyForwardFill Strategy = "forward_fill"
	// StrategyBackwardFill replaces a failing value with the nearest
	// following value that itself passes validation.
	StrategyBackwardFill Strategy = "backward_fill"
)

// Apply runs strategy over values using failures (as produced by
// ValidateColumn) to decide which indices need repair, returning a new
// slice (values is never mutated in place) plus the indices that
// remain quarantined (unrepairable under the chosen strategy).
func Apply(strategy Strategy, values []string, def *taxonomy.Definition, failures map[int][]Violation) ([]string, []int) {
	out := make([]string, len(values))
	copy(out, values)

	switch strategy {
	case StrategySetNull:
		for i := range failures {
			out[i] = ""
		}
		return out, nil

	case StrategyForwardFill:
		var quarantined []int
		for i := range out {
			if _, failed := failures[i]; !failed {
				continue
			}
			filled := false
			for j := i - 1; j >= 0; j-- {
				if _, stillFails := failures[j]; !stillFails {
					out[i] = out[j]
					filled = true
					break
				}
			}
			if !filled {
				quarantined = append(quarantined, i)
			}
		}
		return out, quarantined

	case StrategyBackwardFill:
		var quarantined []int
		for i := range out {
			if _, failed := failures[i]; !failed {
				continue
			}
			filled := false
			for j := i + 1; j < len(out); j++ {
				if _, stillFails := failures[j]; !stillFails {
					out[i] = out[j]
					filled = true
					break
				}
			}
			if !filled {
				quarantined = append(quarantined, i)
			}
		}
		return out, quarantined

	default: // StrategyQuarantine
		quarantined := make([]int, 0, len(failures))
		for i := range failures {
			quarantined = append(quarantined, i)
		}
		sort.Ints(quarantined)
		return out, quarantined
	}
}
