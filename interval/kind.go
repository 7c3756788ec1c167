//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Relation -trimprefix=Relation -transform=kebab
package interval

// Kind tells which side of an interval a Limit anchors and whether the
// boundary value itself belongs to the interval.
//
// The zero Kind is not a kind: a Limit holding it is unset.
type Kind uint8

const (
	KindUnboundedLow Kind = iota + 1
	KindClosedLow
	KindOpenLow
	KindOpenHigh
	KindClosedHigh
	KindUnboundedHigh
)

// IsLow reports whether k anchors the lower end of an interval.
func (k Kind) IsLow() bool {
	return k == KindUnboundedLow || k == KindClosedLow || k == KindOpenLow
}

// IsHigh reports whether k anchors the upper end of an interval.
func (k Kind) IsHigh() bool {
	return k == KindUnboundedHigh || k == KindClosedHigh || k == KindOpenHigh
}

// delta is the tie breaker of the sort key for bounded kinds.
// An open upper limit sits just below its value, an open lower limit just above it.
func (k Kind) delta() int {
	switch k {
	case KindOpenHigh:
		return -1
	case KindOpenLow:
		return 1
	}
	return 0
}

// flip turns the limit kind into the kind that bounds the complement on the
// other side of the same value: "5]" becomes "(5" and "[5" becomes "5)".
func (k Kind) flip() Kind {
	switch k {
	case KindClosedLow:
		return KindOpenHigh
	case KindOpenLow:
		return KindClosedHigh
	case KindOpenHigh:
		return KindClosedLow
	case KindClosedHigh:
		return KindOpenLow
	}
	panic(precondition("cannot flip limit kind %s", k))
}
