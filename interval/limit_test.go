package interval

import (
	"math"
	"testing"
)

func TestLimit_Compare_TotalOrder(t *testing.T) {
	// ascending; entries sharing a rank compare equal
	ordered := []struct {
		l    Limit[int]
		rank int
	}{
		{UnboundedLow[int](), 0},
		{OpenHigh(1), 1},
		{ClosedLow(1), 2},
		{ClosedHigh(1), 2},
		{OpenLow(1), 3},
		{OpenHigh(2), 4},
		{ClosedLow(2), 5},
		{ClosedHigh(2), 5},
		{OpenLow(2), 6},
		{UnboundedHigh[int](), 7},
	}

	sign := func(n int) int {
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		}
		return 0
	}

	for _, a := range ordered {
		for _, b := range ordered {
			want := sign(a.rank - b.rank)
			if got := a.l.Compare(b.l); got != want {
				t.Fatalf("%s.Compare(%s) = %d, want %d", a.l, b.l, got, want)
			}
		}
	}
}

func TestLimit_ContainsPoint(t *testing.T) {
	cases := []struct {
		name string
		l    Limit[int]
		x    int
		exp  bool
	}{
		{"unbounded_low", UnboundedLow[int](), math.MinInt, true},
		{"unbounded_high", UnboundedHigh[int](), math.MaxInt, true},
		{"closed_low_on_value", ClosedLow(5), 5, true},
		{"closed_low_below", ClosedLow(5), 4, false},
		{"open_low_on_value", OpenLow(5), 5, false},
		{"open_low_above", OpenLow(5), 6, true},
		{"closed_high_on_value", ClosedHigh(5), 5, true},
		{"closed_high_above", ClosedHigh(5), 6, false},
		{"open_high_on_value", OpenHigh(5), 5, false},
		{"open_high_below", OpenHigh(5), 4, true},
	}

	for _, tc := range cases {
		if got := tc.l.ContainsPoint(tc.x); got != tc.exp {
			t.Fatalf("%s: %s.ContainsPoint(%d) = %v, want %v", tc.name, tc.l, tc.x, got, tc.exp)
		}
	}
}

func TestLimit_Classification(t *testing.T) {
	cases := []struct {
		l                       Limit[string]
		open, closed, unbounded bool
		low, high               bool
		str                     string
	}{
		{UnboundedLow[string](), false, false, true, true, false, "(-∞"},
		{ClosedLow("a"), false, true, false, true, false, "[a"},
		{OpenLow("a"), true, false, false, true, false, "(a"},
		{OpenHigh("z"), true, false, false, false, true, "z)"},
		{ClosedHigh("z"), false, true, false, false, true, "z]"},
		{UnboundedHigh[string](), false, false, true, false, true, "+∞)"},
	}

	for _, tc := range cases {
		if tc.l.IsOpen() != tc.open || tc.l.IsClosed() != tc.closed || tc.l.IsUnbounded() != tc.unbounded {
			t.Fatalf("%s: open/closed/unbounded = %v/%v/%v, want %v/%v/%v", tc.l,
				tc.l.IsOpen(), tc.l.IsClosed(), tc.l.IsUnbounded(), tc.open, tc.closed, tc.unbounded)
		}
		if tc.l.Kind().IsLow() != tc.low || tc.l.Kind().IsHigh() != tc.high {
			t.Fatalf("%s: low/high = %v/%v, want %v/%v", tc.l, tc.l.Kind().IsLow(), tc.l.Kind().IsHigh(), tc.low, tc.high)
		}
		if got := tc.l.String(); got != tc.str {
			t.Fatalf("String() = %q, want %q", got, tc.str)
		}
		if _, ok := tc.l.Value(); ok == tc.unbounded {
			t.Fatalf("%s: Value() ok = %v, want %v", tc.l, ok, !tc.unbounded)
		}
	}
}

func TestLimit_Flip(t *testing.T) {
	cases := []struct {
		in, exp Limit[int]
	}{
		{ClosedLow(3), OpenHigh(3)},
		{OpenLow(3), ClosedHigh(3)},
		{OpenHigh(3), ClosedLow(3)},
		{ClosedHigh(3), OpenLow(3)},
	}

	for _, tc := range cases {
		if got := tc.in.flip(); got != tc.exp {
			t.Fatalf("%s.flip() = %s, want %s", tc.in, got, tc.exp)
		}
		if got := tc.in.flip().flip(); got != tc.in {
			t.Fatalf("%s.flip().flip() = %s", tc.in, got)
		}
	}
}

func TestLimit_NaNIsRejected(t *testing.T) {
	for name, build := range map[string]func(float64) Limit[float64]{
		"ClosedLow":  ClosedLow[float64],
		"OpenLow":    OpenLow[float64],
		"OpenHigh":   OpenHigh[float64],
		"ClosedHigh": ClosedHigh[float64],
	} {
		func() {
			defer func() {
				if r := recover(); !IsPrecondition(r) {
					t.Fatalf("%s(NaN): recovered %v, want a precondition error", name, r)
				}
			}()
			build(math.NaN())
		}()
	}
}

func TestKind_Strings(t *testing.T) {
	want := []string{"unbounded-low", "closed-low", "open-low", "open-high", "closed-high", "unbounded-high"}
	for i, k := range KindValues() {
		if k.String() != want[i] {
			t.Fatalf("KindValues()[%d].String() = %q, want %q", i, k.String(), want[i])
		}
		back, err := KindString(want[i])
		if err != nil || back != k {
			t.Fatalf("KindString(%q) = %v, %v", want[i], back, err)
		}
	}
	if Kind(0).IsAKind() {
		t.Fatalf("the zero Kind must not be a kind")
	}
}
