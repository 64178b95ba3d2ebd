// Package interval provides closed integer intervals and operations that
// reduce collections of them to their minimal merged form: no two intervals
// left overlapping, touching or nested, with the covered points preserved
// exactly.
package interval

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// ErrInverted is returned when an interval's lower bound exceeds its upper
// bound. Such intervals are rejected before any merging happens.
var ErrInverted = errors.New("interval: min greater than max")

// An Interval is a closed range of integers. Both bounds are included.
type Interval struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// New returns the interval [min,max], rejecting inverted bounds.
func New(min, max int) (Interval, error) {
	iv := Interval{Min: min, Max: max}
	if !iv.WellFormed() {
		return Interval{}, errors.Wrapf(ErrInverted, "[%d,%d]", min, max)
	}

	return iv, nil
}

// WellFormed reports whether Min <= Max. All other methods assume it.
func (iv Interval) WellFormed() bool {
	return iv.Min <= iv.Max
}

// Len returns the number of integer points covered by iv.
func (iv Interval) Len() int {
	return iv.Max - iv.Min + 1
}

// Overlaps reports whether iv and other share at least one point. Touching
// bounds count: [1,5] overlaps [5,10]. A gap of a single unit, as between
// [1,4] and [5,10], does not.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Min <= other.Max && other.Min <= iv.Max
}

// Contains reports whether other lies entirely within iv. An interval
// contains itself.
func (iv Interval) Contains(other Interval) bool {
	return iv.Min <= other.Min && other.Max <= iv.Max
}

// ContainsPoint reports whether the point x lies within iv.
func (iv Interval) ContainsPoint(x int) bool {
	return iv.Min <= x && x <= iv.Max
}

// String renders iv as "[min,max]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Min, iv.Max)
}

// Sort orders ivs in place by lower bound, breaking ties by upper bound.
func Sort(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Min != ivs[j].Min {
			return ivs[i].Min < ivs[j].Min
		}

		return ivs[i].Max < ivs[j].Max
	})
}
