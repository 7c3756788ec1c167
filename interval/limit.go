package interval

import (
	"cmp"
	"fmt"
)

// Limit is one boundary of an interval: a value plus a Kind. Unbounded limits
// carry the zero value of T so that two equal limits are also == equal.
//
// All six kinds share one total order regardless of side. Bounded limits sort
// by value first and then by the kind's delta:
//
//	v)  <  [v  ==  v]  <  (v
//
// (-∞ sorts before every other limit and +∞) after every other limit.
type Limit[T cmp.Ordered] struct {
	value T
	kind  Kind
}

// UnboundedLow returns the lower limit (-∞.
func UnboundedLow[T cmp.Ordered]() Limit[T] {
	return Limit[T]{kind: KindUnboundedLow}
}

// UnboundedHigh returns the upper limit +∞).
func UnboundedHigh[T cmp.Ordered]() Limit[T] {
	return Limit[T]{kind: KindUnboundedHigh}
}

// ClosedLow returns the lower limit [v.
func ClosedLow[T cmp.Ordered](v T) Limit[T] {
	return bounded(v, KindClosedLow)
}

// OpenLow returns the lower limit (v.
func OpenLow[T cmp.Ordered](v T) Limit[T] {
	return bounded(v, KindOpenLow)
}

// ClosedHigh returns the upper limit v].
func ClosedHigh[T cmp.Ordered](v T) Limit[T] {
	return bounded(v, KindClosedHigh)
}

// OpenHigh returns the upper limit v).
func OpenHigh[T cmp.Ordered](v T) Limit[T] {
	return bounded(v, KindOpenHigh)
}

func bounded[T cmp.Ordered](v T, k Kind) Limit[T] {
	if isNaN(v) {
		panic(precondition("%s limit requires a value, got NaN", k))
	}
	return Limit[T]{value: v, kind: k}
}

// isNaN reports whether v is a floating point NaN, the only cmp.Ordered value
// that has no place in the natural order.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}

// Kind returns the kind of l.
func (l Limit[T]) Kind() Kind {
	return l.kind
}

// Value returns the boundary value. The boolean is false for unbounded limits.
func (l Limit[T]) Value() (T, bool) {
	return l.value, !l.IsUnbounded()
}

// IsOpen reports whether l is a bounded limit excluding its value.
func (l Limit[T]) IsOpen() bool {
	return l.kind == KindOpenLow || l.kind == KindOpenHigh
}

// IsClosed reports whether l is a bounded limit including its value.
func (l Limit[T]) IsClosed() bool {
	return l.kind == KindClosedLow || l.kind == KindClosedHigh
}

// IsUnbounded reports whether l is -∞ or +∞.
func (l Limit[T]) IsUnbounded() bool {
	return l.kind == KindUnboundedLow || l.kind == KindUnboundedHigh
}

// IsSet reports whether l was built by one of the factories, as opposed to
// being the zero Limit.
func (l Limit[T]) IsSet() bool {
	return l.kind.IsAKind()
}

// Compare returns -1, 0 or +1 depending on whether l sorts before, together
// with or after o. A closed lower and a closed upper limit on the same value
// compare equal.
func (l Limit[T]) Compare(o Limit[T]) int {
	if l.kind == KindUnboundedLow || o.kind == KindUnboundedHigh {
		if l.kind == o.kind {
			return 0
		}
		return -1
	}
	if l.kind == KindUnboundedHigh || o.kind == KindUnboundedLow {
		if l.kind == o.kind {
			return 0
		}
		return 1
	}
	if c := cmp.Compare(l.value, o.value); c != 0 {
		return c
	}
	return cmp.Compare(l.kind.delta(), o.kind.delta())
}

// ContainsPoint reports whether x lies on the inner side of l: at or above a
// lower limit, at or below an upper limit.
func (l Limit[T]) ContainsPoint(x T) bool {
	if isNaN(x) {
		return false
	}
	c := l.Compare(Limit[T]{value: x, kind: KindClosedLow})
	if l.kind.IsLow() {
		return c <= 0
	}
	return c >= 0
}

// flip returns the limit on the other side of the same value with the
// opposite openness: the boundary of whatever l excludes.
func (l Limit[T]) flip() Limit[T] {
	return Limit[T]{value: l.value, kind: l.kind.flip()}
}

func (l Limit[T]) String() string {
	switch l.kind {
	case KindUnboundedLow:
		return "(-∞"
	case KindUnboundedHigh:
		return "+∞)"
	case KindClosedLow:
		return fmt.Sprintf("[%v", l.value)
	case KindOpenLow:
		return fmt.Sprintf("(%v", l.value)
	case KindOpenHigh:
		return fmt.Sprintf("%v)", l.value)
	case KindClosedHigh:
		return fmt.Sprintf("%v]", l.value)
	}
	return "<unset>"
}

func minLimit[T cmp.Ordered](a, b Limit[T]) Limit[T] {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

func maxLimit[T cmp.Ordered](a, b Limit[T]) Limit[T] {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}
