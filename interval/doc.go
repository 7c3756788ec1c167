// Package interval implements intervals over any ordered type: bounded,
// half-bounded and unbounded, open, closed or mixed at each end, together
// with the relations and set operations between them.
//
// An interval is built from two limits. Each limit has one of six kinds,
// and all six share a single total order in which a closed lower and a
// closed upper limit on the same value sit together, an open lower limit
// sits just above its value and an open upper limit just below it. Every
// relation and operation on intervals reduces to comparing limits in that
// order:
//
//	a := interval.Closed(0, 10)
//	b := interval.ClosedOpen(10, 20)
//	a.Intersect(b)           // [10, 10]
//	a.IsConsecutiveTo(b)     // true, they share the single value 10
//	u, _ := a.Unify(b)       // [0, 20)
//
// Unify and Subtract fail with ErrUnrepresentable when the exact result is
// made of two separate pieces; CanUnify and CanSubtract tell in advance.
// Set keeps arbitrary unions of intervals.
//
// Intervals, limits and sets are immutable values and safe for concurrent use.
package interval
