package interval

import "github.com/pkg/errors"

// Merge returns the minimal collection of intervals covering exactly the
// points covered by ivs: every pair that overlaps or touches is folded into
// one interval, and intervals nested in another are absorbed.
//
// The input is never mutated; the result is freshly allocated. Inverted
// intervals are rejected with ErrInverted before any merging happens, and an
// empty input yields an empty result. The ordering of the result is not part
// of the contract.
func Merge(ivs []Interval) ([]Interval, error) {
	if err := validate(ivs); err != nil {
		return nil, err
	}

	if len(ivs) == 0 {
		return nil, nil
	}

	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	Sort(sorted)

	merged := make([]Interval, 0, len(sorted))
	merged = append(merged, sorted[0])

	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]

		// cur starts at or before the end of the growing interval, so
		// the two share a point. cur cannot start before last does:
		// the collection is sorted by lower bound.
		if cur.Min <= last.Max {
			if cur.Max > last.Max {
				last.Max = cur.Max
			}

			continue
		}

		merged = append(merged, cur)
	}

	return merged, nil
}

func validate(ivs []Interval) error {
	for i, iv := range ivs {
		if !iv.WellFormed() {
			return errors.Wrapf(ErrInverted, "interval %d: [%d,%d]", i, iv.Min, iv.Max)
		}
	}

	return nil
}

// mergePairwise is the quadratic reference reduction: every interval in turn
// is compared against all others and eliminated when it is nested in one of
// them or extends one leftward. Eliminations are logical, a live mask over a
// fixed arena, and full passes repeat until none fires, so the outcome does
// not depend on scan order. Tests use it as an oracle for Merge.
func mergePairwise(ivs []Interval) []Interval {
	arena := make([]Interval, len(ivs))
	copy(arena, ivs)

	live := make([]bool, len(arena))
	for i := range live {
		live[i] = true
	}

	for changed := true; changed; {
		changed = false

		for cursor := len(arena) - 1; cursor >= 0; cursor-- {
			if !live[cursor] {
				continue
			}
			cand := arena[cursor]

			for i, other := range arena {
				if i == cursor || !live[i] {
					continue
				}

				// cand adds nothing beyond other. Drop it; this
				// also collapses exact duplicates.
				if cand.Min >= other.Min && cand.Max <= other.Max {
					live[cursor] = false
					changed = true
					break
				}

				// cand extends other leftward without passing it
				// on the right. Widen other, drop cand.
				if other.Min <= cand.Max && cand.Max <= other.Max && cand.Min < other.Min {
					arena[i].Min = cand.Min
					live[cursor] = false
					changed = true
					break
				}
			}
		}
	}

	var out []Interval
	for i, iv := range arena {
		if live[i] {
			out = append(out, iv)
		}
	}

	return out
}
