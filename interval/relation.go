package interval

import "cmp"

// Relation classifies how two intervals sit relative to each other. Every
// pair of intervals has exactly one relation.
type Relation uint8

const (
	// RelationDisjoint: no shared value and a gap in between.
	RelationDisjoint Relation = iota
	// RelationAdjacent: no shared value and nothing in between.
	RelationAdjacent
	RelationEqual
	// RelationIncludes: the first interval is a strict superset of the second.
	RelationIncludes
	// RelationIncludedBy: the first interval is a strict subset of the second.
	RelationIncludedBy
	// RelationOverlaps: the intervals cross without either including the other.
	RelationOverlaps
)

// Relate returns the relation of a to b. The empty interval is included by
// every non-empty interval.
func Relate[T cmp.Ordered](a, b Interval[T]) Relation {
	switch {
	case a.Equal(b):
		return RelationEqual
	case a.Includes(b):
		return RelationIncludes
	case b.Includes(a):
		return RelationIncludedBy
	case a.Overlaps(b):
		return RelationOverlaps
	case a.IsStrictlyConsecutiveTo(b):
		return RelationAdjacent
	}
	return RelationDisjoint
}

// Inverse returns the relation of b to a given r is the relation of a to b.
func (r Relation) Inverse() Relation {
	switch r {
	case RelationIncludes:
		return RelationIncludedBy
	case RelationIncludedBy:
		return RelationIncludes
	}
	return r
}
