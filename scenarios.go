package main

import (
	"github.com/pkg/errors"

	"intervalmerge/interval"
)

// A scenario is a canned merge with a known-good result. Expected
// collections are compared as unordered sets.
type scenario struct {
	name  string
	input []interval.Interval
	want  []interval.Interval
}

var scenarios = []scenario{
	{
		name:  "chain of overlaps",
		input: []interval.Interval{{Min: 25, Max: 30}, {Min: 2, Max: 19}, {Min: 14, Max: 23}, {Min: 4, Max: 8}},
		want:  []interval.Interval{{Min: 2, Max: 23}, {Min: 25, Max: 30}},
	},
	{
		name:  "touching bounds merge",
		input: []interval.Interval{{Min: 1, Max: 5}, {Min: 5, Max: 10}},
		want:  []interval.Interval{{Min: 1, Max: 10}},
	},
	{
		name:  "unit gap stays split",
		input: []interval.Interval{{Min: 1, Max: 4}, {Min: 5, Max: 10}},
		want:  []interval.Interval{{Min: 1, Max: 4}, {Min: 5, Max: 10}},
	},
	{
		name:  "contained interval is absorbed",
		input: []interval.Interval{{Min: 1, Max: 4}, {Min: 2, Max: 4}},
		want:  []interval.Interval{{Min: 1, Max: 4}},
	},
	{
		name:  "plain overlap",
		input: []interval.Interval{{Min: 1, Max: 4}, {Min: 2, Max: 5}},
		want:  []interval.Interval{{Min: 1, Max: 5}},
	},
	{
		name:  "shared lower bound",
		input: []interval.Interval{{Min: 1, Max: 3}, {Min: 1, Max: 4}},
		want:  []interval.Interval{{Min: 1, Max: 4}},
	},
	{
		name:  "exact duplicate collapses",
		input: []interval.Interval{{Min: 1, Max: 4}, {Min: 1, Max: 4}},
		want:  []interval.Interval{{Min: 1, Max: 4}},
	},
	{
		name:  "three way chain",
		input: []interval.Interval{{Min: 1, Max: 3}, {Min: 2, Max: 4}, {Min: 3, Max: 5}},
		want:  []interval.Interval{{Min: 1, Max: 5}},
	},
	{
		name:  "duplicates and disjoint leftover",
		input: []interval.Interval{{Min: 3, Max: 30}, {Min: 10, Max: 20}, {Min: 3, Max: 30}, {Min: 1, Max: 2}, {Min: 27, Max: 40}},
		want:  []interval.Interval{{Min: 1, Max: 2}, {Min: 3, Max: 40}},
	},
	{
		name:  "single interval passes through",
		input: []interval.Interval{{Min: 3, Max: 30}},
		want:  []interval.Interval{{Min: 3, Max: 30}},
	},
}

// runScenario merges the scenario's input and grades the result against
// the expected collection.
func runScenario(sc scenario) (outcome, error) {
	merged, err := interval.Merge(sc.input)
	if err != nil {
		return outcome{}, errors.Wrapf(err, "merging scenario %q", sc.name)
	}

	return outcome{
		Scenario: sc.name,
		Pass:     equalSets(merged, sc.want),
		Input:    sc.input,
		Merged:   merged,
		Expected: sc.want,
	}, nil
}

// equalSets reports whether a and b hold the same intervals, ignoring
// order. Neither argument is modified.
func equalSets(a, b []interval.Interval) bool {
	if len(a) != len(b) {
		return false
	}

	as := append([]interval.Interval(nil), a...)
	bs := append([]interval.Interval(nil), b...)
	interval.Sort(as)
	interval.Sort(bs)

	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}
