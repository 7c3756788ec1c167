package interval

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse reads an interval written in one of the forms below, using value to
// read each bound. Spaces are ignored.
//
// Supported formats:
//   - ∅, {} or empty
//   - N or =N: the single value N
//   - >N, >=N, <N, <=N
//   - [a, b], (a, b), [a, b), (a, b]
//   - (, b], [a, ), (-∞, b), (a, +∞) etc.
//
// Rules:
//   - An unbounded side is written empty or as -∞, -inf, +∞, +inf, ∞ or inf,
//     and must use an open bracket. For string types the words inf, -inf and
//     +inf are ordinary bounds; only the empty side and the ∞ symbols are
//     unbounded, so a string bound spelled ∞, -∞ or +∞ cannot be written.
//   - b below a is an error. Equal bounds are accepted and may denote the
//     empty interval, as in (3, 3).
//
// Parse accepts everything String produces for numeric values.
func Parse[T cmp.Ordered](s string, value func(string) (T, error)) (Interval[T], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Interval[T]{}, errors.New("empty interval expression")
	}

	switch s {
	case "∅", "{}", "empty":
		return Empty[T](), nil
	}

	// prefix operators
	for _, op := range []struct {
		prefix string
		build  func(T) Interval[T]
	}{
		{">=", AtLeast[T]},
		{"<=", AtMost[T]},
		{">", GreaterThan[T]},
		{"<", LessThan[T]},
		{"=", Singleton[T]},
	} {
		if !strings.HasPrefix(s, op.prefix) {
			continue
		}
		v, err := parseBound(s[len(op.prefix):], value)
		if err != nil {
			return Interval[T]{}, errors.Wrapf(err, "invalid %sN", op.prefix)
		}
		return op.build(v), nil
	}

	// interval notation
	if len(s) >= 2 && strings.ContainsRune("([", rune(s[0])) && strings.ContainsRune(")]", rune(s[len(s)-1])) {
		return parseBrackets(s, value)
	}

	v, err := parseBound(s, value)
	if err != nil {
		return Interval[T]{}, errors.Wrapf(err, "unrecognized interval %q", s)
	}
	return Singleton(v), nil
}

func parseBrackets[T cmp.Ordered](s string, value func(string) (T, error)) (Interval[T], error) {
	words := !isText[T]()
	leftClosed := s[0] == '['
	rightClosed := s[len(s)-1] == ']'
	parts := strings.SplitN(s[1:len(s)-1], ",", 2)
	if len(parts) != 2 {
		return Interval[T]{}, errors.Newf("invalid interval syntax: %s", s)
	}
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	var lower Limit[T]
	switch {
	case isInfinity(left, "-", words):
		if leftClosed {
			return Interval[T]{}, errors.Newf("unbounded side must be open on the left: %s", s)
		}
		lower = UnboundedLow[T]()
	default:
		v, err := parseBound(left, value)
		if err != nil {
			return Interval[T]{}, errors.Wrap(err, "invalid lower bound")
		}
		if leftClosed {
			lower = ClosedLow(v)
		} else {
			lower = OpenLow(v)
		}
	}

	var upper Limit[T]
	switch {
	case isInfinity(right, "+", words):
		if rightClosed {
			return Interval[T]{}, errors.Newf("unbounded side must be open on the right: %s", s)
		}
		upper = UnboundedHigh[T]()
	default:
		v, err := parseBound(right, value)
		if err != nil {
			return Interval[T]{}, errors.Wrap(err, "invalid upper bound")
		}
		if rightClosed {
			upper = ClosedHigh(v)
		} else {
			upper = OpenHigh(v)
		}
	}

	lv, lok := lower.Value()
	uv, uok := upper.Value()
	if lok && uok && uv < lv {
		return Interval[T]{}, errors.Newf("upper bound %v is below lower bound %v: %s", uv, lv, s)
	}
	return build(lower, upper), nil
}

// isInfinity reports whether tok denotes the infinity on the given side.
// An empty token is the infinity of whichever side it appears on. The inf
// words only count when words is set.
func isInfinity(tok string, sign string, words bool) bool {
	switch tok {
	case "", "∞", sign + "∞":
		return true
	case "inf", sign + "inf":
		return words
	}
	return false
}

// isText reports whether T is a string type.
func isText[T cmp.Ordered]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.String
}

func parseBound[T cmp.Ordered](tok string, value func(string) (T, error)) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		var zero T
		return zero, errors.New("missing value")
	}
	v, err := value(tok)
	if err != nil {
		return v, err
	}
	if isNaN(v) {
		return v, errors.Newf("%q is not an ordered value", tok)
	}
	return v, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse[T cmp.Ordered](s string, value func(string) (T, error)) Interval[T] {
	i, err := Parse(s, value)
	if err != nil {
		panic(err)
	}
	return i
}
