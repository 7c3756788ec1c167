package interval

import (
	"cmp"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Set is an immutable union of intervals. Members are kept maximal: no two
// of them can be unified, so they are disjoint with a gap in between, and
// they are ordered by their lower limit.
//
// The zero Set is empty and ready to use.
type Set[T cmp.Ordered] struct {
	members *immutable.SortedMap[Limit[T], Interval[T]]
}

type limitComparer[T cmp.Ordered] struct{}

func (limitComparer[T]) Compare(a, b Limit[T]) int {
	return a.Compare(b)
}

// NewSet returns the union of ivs.
func NewSet[T cmp.Ordered](ivs ...Interval[T]) Set[T] {
	var s Set[T]
	for _, iv := range ivs {
		s = s.Add(iv)
	}
	return s
}

func (s Set[T]) tree() *immutable.SortedMap[Limit[T], Interval[T]] {
	if s.members == nil {
		return immutable.NewSortedMap[Limit[T], Interval[T]](limitComparer[T]{})
	}
	return s.members
}

// Len returns the number of maximal intervals in s.
func (s Set[T]) Len() int {
	if s.members == nil {
		return 0
	}
	return s.members.Len()
}

// IsEmpty reports whether s holds no value.
func (s Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// IsUnbounded reports whether s holds every value.
func (s Set[T]) IsUnbounded() bool {
	ivs := s.Intervals()
	return len(ivs) == 1 && ivs[0].IsUnbounded()
}

// Intervals returns the members of s in ascending order.
func (s Set[T]) Intervals() []Interval[T] {
	if s.members == nil {
		return nil
	}
	out := make([]Interval[T], 0, s.members.Len())
	for itr := s.members.Iterator(); !itr.Done(); {
		_, iv, _ := itr.Next()
		out = append(out, iv)
	}
	return out
}

// Add returns s with every value of iv added. Members that can be unified
// with iv are merged into one.
func (s Set[T]) Add(iv Interval[T]) Set[T] {
	if iv.IsEmpty() {
		return s
	}
	tree := s.tree()
	merged := iv
	for itr := tree.Iterator(); !itr.Done(); {
		key, member, _ := itr.Next()
		if !member.CanUnify(merged) {
			continue
		}
		merged, _ = merged.Unify(member)
		tree = tree.Delete(key)
	}
	return Set[T]{members: tree.Set(merged.lower, merged)}
}

// Remove returns s without the values of iv. A member holding iv strictly
// inside is split in two.
func (s Set[T]) Remove(iv Interval[T]) Set[T] {
	if iv.IsEmpty() || s.IsEmpty() {
		return s
	}
	tree := s.members
	for itr := s.members.Iterator(); !itr.Done(); {
		key, member, _ := itr.Next()
		if member.IsDisjointFrom(iv) {
			continue
		}
		tree = tree.Delete(key)
		left, right := member.split(iv)
		for _, piece := range []Interval[T]{left, right} {
			if !piece.IsEmpty() {
				tree = tree.Set(piece.lower, piece)
			}
		}
	}
	return Set[T]{members: tree}
}

// Union returns the values held by s or o.
func (s Set[T]) Union(o Set[T]) Set[T] {
	for _, iv := range o.Intervals() {
		s = s.Add(iv)
	}
	return s
}

// Intersect returns the values held by both s and o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	var out Set[T]
	for _, a := range s.Intervals() {
		for _, b := range o.Intervals() {
			out = out.Add(a.Intersect(b))
		}
	}
	return out
}

// Complement returns the values not held by s.
func (s Set[T]) Complement() Set[T] {
	out := NewSet(Unbounded[T]())
	for _, iv := range s.Intervals() {
		out = out.Remove(iv)
	}
	return out
}

// Contains reports whether x belongs to s.
func (s Set[T]) Contains(x T) bool {
	for _, iv := range s.Intervals() {
		if iv.Contains(x) {
			return true
		}
	}
	return false
}

// Includes reports whether every value of iv belongs to s.
func (s Set[T]) Includes(iv Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	for _, member := range s.Intervals() {
		if member.Includes(iv) {
			return true
		}
	}
	return false
}

// Span returns the smallest interval including every member of s.
func (s Set[T]) Span() Interval[T] {
	if s.IsEmpty() {
		return Empty[T]()
	}
	itr := s.members.Iterator()
	_, first, _ := itr.Next()
	itr.Last()
	_, last, _ := itr.Next()
	return build(first.lower, last.upper)
}

// Equal reports whether s and o hold the same values.
func (s Set[T]) Equal(o Set[T]) bool {
	a, b := s.Intervals(), o.Intervals()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders s as {[0, 1], (2, +∞)}, or ∅ when empty.
func (s Set[T]) String() string {
	ivs := s.Intervals()
	if len(ivs) == 0 {
		return "∅"
	}
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
