package interval

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// Interval is an immutable range of values of T delimited by a lower and an
// upper Limit. An interval is empty exactly when its lower limit sorts after
// its upper limit; every empty interval is stored as [+∞, -∞], so == and
// Equal treat all of them alike and Interval can be used as a map key.
//
// The zero Interval is unset. Passing it to any relation or algebra method
// is a precondition violation.
type Interval[T cmp.Ordered] struct {
	lower Limit[T]
	upper Limit[T]
}

func build[T cmp.Ordered](lower, upper Limit[T]) Interval[T] {
	if lower.Compare(upper) > 0 {
		return Empty[T]()
	}
	return Interval[T]{lower: lower, upper: upper}
}

// New builds the interval delimited by lower and upper. Limits in the wrong
// order give the empty interval; a lower limit of an upper kind (or the
// reverse) is an error.
func New[T cmp.Ordered](lower, upper Limit[T]) (Interval[T], error) {
	if !lower.kind.IsLow() {
		return Interval[T]{}, errors.Newf("lower limit %s has kind %s", lower, lower.kind)
	}
	if !upper.kind.IsHigh() {
		return Interval[T]{}, errors.Newf("upper limit %s has kind %s", upper, upper.kind)
	}
	return build(lower, upper), nil
}

// Empty returns the empty interval ∅.
func Empty[T cmp.Ordered]() Interval[T] {
	return Interval[T]{lower: UnboundedHigh[T](), upper: UnboundedLow[T]()}
}

// Unbounded returns (-∞, +∞).
func Unbounded[T cmp.Ordered]() Interval[T] {
	return Interval[T]{lower: UnboundedLow[T](), upper: UnboundedHigh[T]()}
}

// AtLeast returns [v, +∞).
func AtLeast[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: ClosedLow(v), upper: UnboundedHigh[T]()}
}

// GreaterThan returns (v, +∞).
func GreaterThan[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: OpenLow(v), upper: UnboundedHigh[T]()}
}

// AtMost returns (-∞, v].
func AtMost[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: UnboundedLow[T](), upper: ClosedHigh(v)}
}

// LessThan returns (-∞, v).
func LessThan[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: UnboundedLow[T](), upper: OpenHigh(v)}
}

// Open returns (lo, hi). Open(v, v) is empty.
func Open[T cmp.Ordered](lo, hi T) Interval[T] {
	checkOrder(lo, hi)
	return build(OpenLow(lo), OpenHigh(hi))
}

// OpenClosed returns (lo, hi].
func OpenClosed[T cmp.Ordered](lo, hi T) Interval[T] {
	checkOrder(lo, hi)
	return build(OpenLow(lo), ClosedHigh(hi))
}

// Closed returns [lo, hi]. Closed(v, v) holds the single value v.
func Closed[T cmp.Ordered](lo, hi T) Interval[T] {
	checkOrder(lo, hi)
	return build(ClosedLow(lo), ClosedHigh(hi))
}

// ClosedOpen returns [lo, hi).
func ClosedOpen[T cmp.Ordered](lo, hi T) Interval[T] {
	checkOrder(lo, hi)
	return build(ClosedLow(lo), OpenHigh(hi))
}

// Singleton returns [v, v].
func Singleton[T cmp.Ordered](v T) Interval[T] {
	return Closed(v, v)
}

func checkOrder[T cmp.Ordered](lo, hi T) {
	if isNaN(lo) || isNaN(hi) {
		panic(precondition("interval bounds must not be NaN"))
	}
	if hi < lo {
		panic(precondition("interval upper bound %v is below lower bound %v", hi, lo))
	}
}

func (i Interval[T]) mustBeSet() {
	if !i.lower.IsSet() || !i.upper.IsSet() {
		panic(precondition("interval is unset"))
	}
}

func (i Interval[T]) mustBothBeSet(o Interval[T]) {
	i.mustBeSet()
	if !o.lower.IsSet() || !o.upper.IsSet() {
		panic(precondition("interval argument is unset"))
	}
}

// Lower returns the lower limit. It is +∞) for the empty interval.
func (i Interval[T]) Lower() Limit[T] {
	return i.lower
}

// Upper returns the upper limit. It is (-∞ for the empty interval.
func (i Interval[T]) Upper() Limit[T] {
	return i.upper
}

// IsEmpty reports whether i holds no value.
func (i Interval[T]) IsEmpty() bool {
	i.mustBeSet()
	return i.lower.Compare(i.upper) > 0
}

// IsSingleton reports whether i holds exactly one value.
func (i Interval[T]) IsSingleton() bool {
	i.mustBeSet()
	return i.lower.Compare(i.upper) == 0
}

// IsUnbounded reports whether i is (-∞, +∞).
func (i Interval[T]) IsUnbounded() bool {
	return i.IsLowerUnbounded() && i.IsUpperUnbounded()
}

// IsLowerUnbounded reports whether i extends to -∞.
func (i Interval[T]) IsLowerUnbounded() bool {
	i.mustBeSet()
	return i.lower.kind == KindUnboundedLow
}

// IsUpperUnbounded reports whether i extends to +∞.
func (i Interval[T]) IsUpperUnbounded() bool {
	i.mustBeSet()
	return i.upper.kind == KindUnboundedHigh
}

// IsLowerOpen reports whether i has a bounded lower limit excluding its value.
func (i Interval[T]) IsLowerOpen() bool {
	i.mustBeSet()
	return i.lower.kind == KindOpenLow
}

// IsUpperOpen reports whether i has a bounded upper limit excluding its value.
func (i Interval[T]) IsUpperOpen() bool {
	i.mustBeSet()
	return i.upper.kind == KindOpenHigh
}

// IsLowerClosed reports whether i has a bounded lower limit including its value.
func (i Interval[T]) IsLowerClosed() bool {
	i.mustBeSet()
	return i.lower.kind == KindClosedLow
}

// IsUpperClosed reports whether i has a bounded upper limit including its value.
func (i Interval[T]) IsUpperClosed() bool {
	i.mustBeSet()
	return i.upper.kind == KindClosedHigh
}

// Equal reports whether i and o hold the same values.
func (i Interval[T]) Equal(o Interval[T]) bool {
	i.mustBothBeSet(o)
	return i == o
}

// Contains reports whether x belongs to i.
func (i Interval[T]) Contains(x T) bool {
	if i.IsEmpty() {
		return false
	}
	return i.lower.ContainsPoint(x) && i.upper.ContainsPoint(x)
}

// Intersect returns the values held by both i and o.
func (i Interval[T]) Intersect(o Interval[T]) Interval[T] {
	i.mustBothBeSet(o)
	return build(maxLimit(i.lower, o.lower), minLimit(i.upper, o.upper))
}

// Includes reports whether every value of o belongs to i. Every interval
// includes the empty interval.
func (i Interval[T]) Includes(o Interval[T]) bool {
	i.mustBothBeSet(o)
	if o.IsEmpty() {
		return true
	}
	return i.lower.Compare(o.lower) <= 0 && o.upper.Compare(i.upper) <= 0
}

// IsDisjointFrom reports whether i and o share no value.
func (i Interval[T]) IsDisjointFrom(o Interval[T]) bool {
	return i.Intersect(o).IsEmpty()
}

// Overlaps reports whether i and o cross each other: they share some value
// and neither includes the other. An interval never overlaps itself.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	return !i.IsDisjointFrom(o) && !i.Includes(o) && !o.Includes(i)
}

// gap returns the values lying strictly between two disjoint non-empty
// intervals. It is empty when the intervals touch.
func (i Interval[T]) gap(o Interval[T]) Interval[T] {
	if i.upper.Compare(o.lower) < 0 {
		return build(i.upper.flip(), o.lower.flip())
	}
	return build(o.upper.flip(), i.lower.flip())
}

// touches reports whether i and o are disjoint with nothing in between.
func (i Interval[T]) touches(o Interval[T]) bool {
	return i.IsDisjointFrom(o) && i.gap(o).IsEmpty()
}

// IsConsecutiveTo reports whether i and o follow each other with no value
// missing in between: they touch, or they share exactly one value. A shared
// range of more than one value is not consecutive.
func (i Interval[T]) IsConsecutiveTo(o Interval[T]) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return true
	}
	return i.Intersect(o).IsSingleton() || i.touches(o)
}

// IsStrictlyConsecutiveTo is IsConsecutiveTo without a shared value allowed.
func (i Interval[T]) IsStrictlyConsecutiveTo(o Interval[T]) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return true
	}
	return i.touches(o)
}

// CanUnify reports whether the union of i and o is a single interval.
func (i Interval[T]) CanUnify(o Interval[T]) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return true
	}
	return !i.IsDisjointFrom(o) || i.gap(o).IsEmpty()
}

// CanSubtract reports whether removing o from i leaves a single interval,
// that is unless o cuts i in two non-empty pieces.
func (i Interval[T]) CanSubtract(o Interval[T]) bool {
	cut := i.Intersect(o)
	if cut.IsEmpty() {
		return true
	}
	return !i.splitBy(cut)
}

// splitBy reports whether the non-empty cut lies strictly inside i on both sides.
func (i Interval[T]) splitBy(cut Interval[T]) bool {
	return i.lower.Compare(cut.lower) < 0 && cut.upper.Compare(i.upper) < 0
}

// Unify returns the smallest interval holding every value of i and o. It
// fails with ErrUnrepresentable when a gap separates them.
func (i Interval[T]) Unify(o Interval[T]) (Interval[T], error) {
	if !i.CanUnify(o) {
		return Empty[T](), errors.Wrapf(ErrUnrepresentable, "unify %s with %s", i, o)
	}
	return build(minLimit(i.lower, o.lower), maxLimit(i.upper, o.upper)), nil
}

// Subtract returns the values of i that do not belong to o. It fails with
// ErrUnrepresentable when o lies strictly inside i.
func (i Interval[T]) Subtract(o Interval[T]) (Interval[T], error) {
	cut := i.Intersect(o)
	switch {
	case cut.IsEmpty():
		return i, nil
	case cut == i:
		return Empty[T](), nil
	case i.splitBy(cut):
		return Empty[T](), errors.Wrapf(ErrUnrepresentable, "subtract %s from %s", o, i)
	case i.lower.Compare(cut.lower) < 0:
		return build(i.lower, cut.lower.flip()), nil
	default:
		return build(cut.upper.flip(), i.upper), nil
	}
}

// split returns what is left of i on each side of o. Either piece may be
// empty; Subtract fails exactly when both are not.
func (i Interval[T]) split(o Interval[T]) (left, right Interval[T]) {
	cut := i.Intersect(o)
	if cut.IsEmpty() {
		if i.upper.Compare(o.lower) < 0 {
			return i, Empty[T]()
		}
		return Empty[T](), i
	}
	left, right = Empty[T](), Empty[T]()
	if i.lower.Compare(cut.lower) < 0 {
		left = build(i.lower, cut.lower.flip())
	}
	if cut.upper.Compare(i.upper) < 0 {
		right = build(cut.upper.flip(), i.upper)
	}
	return left, right
}

// String renders i in interval notation: [0, 10), (-∞, 5], ∅.
func (i Interval[T]) String() string {
	if !i.lower.IsSet() || !i.upper.IsSet() {
		return "<unset>"
	}
	if i.IsEmpty() {
		return "∅"
	}
	return i.lower.String() + ", " + i.upper.String()
}
