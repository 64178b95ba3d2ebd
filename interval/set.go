package interval

import (
	"math"

	rb "github.com/glycerine/rbtree"
	"github.com/pkg/errors"
)

// Set is an incrementally maintained merged collection: after every Add the
// stored intervals are disjoint and non-touching, the same form Merge
// produces. Adds cost O(log n) plus the number of intervals absorbed.
//
// The zero value is not usable; call NewSet.
type Set struct {
	tree *rb.Tree
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{
		// Ordered by upper bound, ties by lower bound. The stored
		// intervals never share a point, so this matches lower-bound
		// order for everything in the tree.
		tree: rb.NewTree(func(a, b rb.Item) int {
			av := a.(Interval)
			bv := b.(Interval)

			if av.Max != bv.Max {
				if av.Max < bv.Max {
					return -1
				}
				return 1
			}
			if av.Min != bv.Min {
				if av.Min < bv.Min {
					return -1
				}
				return 1
			}
			return 0
		}),
	}
}

// Add merges iv into the set. Every stored interval sharing at least one
// point with iv is replaced by the single fused interval. Inverted intervals
// are rejected with ErrInverted and leave the set untouched.
func (s *Set) Add(iv Interval) error {
	if !iv.WellFormed() {
		return errors.Wrapf(ErrInverted, "[%d,%d]", iv.Min, iv.Max)
	}

	fused := iv

	// The first stored interval that can share a point with iv is the one
	// with the smallest upper bound still >= iv.Min. Candidates are
	// consecutive from there in tree order.
	probe := Interval{Min: math.MinInt, Max: iv.Min}
	for it := s.tree.FindGE(probe); !it.Limit(); {
		cur := it.Item().(Interval)
		if cur.Min > fused.Max {
			break
		}

		if cur.Min < fused.Min {
			fused.Min = cur.Min
		}
		if cur.Max > fused.Max {
			fused.Max = cur.Max
		}

		// Advance before deleting behind.
		next := it.Next()
		s.tree.DeleteWithIterator(it)
		it = next
	}

	s.tree.Insert(fused)

	return nil
}

// Len returns the number of disjoint intervals in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Covered returns the total number of integer points the set covers.
func (s *Set) Covered() int {
	total := 0
	for it := s.tree.Min(); !it.Limit(); it = it.Next() {
		total += it.Item().(Interval).Len()
	}

	return total
}

// Contains reports whether the point x is covered by the set.
func (s *Set) Contains(x int) bool {
	it := s.tree.FindGE(Interval{Min: math.MinInt, Max: x})
	if it.Limit() {
		return false
	}

	return it.Item().(Interval).Min <= x
}

// Slice returns the merged intervals in ascending order, nil when the set is
// empty.
func (s *Set) Slice() []Interval {
	if s.tree.Len() == 0 {
		return nil
	}

	out := make([]Interval, 0, s.tree.Len())
	for it := s.tree.Min(); !it.Limit(); it = it.Next() {
		out = append(out, it.Item().(Interval))
	}

	return out
}

func (s *Set) String() (r string) {
	r = "{"
	for it := s.tree.Min(); !it.Limit(); it = it.Next() {
		if len(r) > 1 {
			r += " "
		}
		r += it.Item().(Interval).String()
	}
	r += "}"
	return
}
