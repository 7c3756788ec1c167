package interval

import (
	"strconv"
	"testing"
	"time"
)

func TestParse_ErrorsForMalformedAndReversed(t *testing.T) {
	errCases := []string{
		"",      // nothing to parse
		"(,]",   // right inclusive but infinite -> invalid
		"[,)",   // left inclusive but infinite -> invalid
		"( , ]", // whitespace variants should also error
		"[-inf, 3)",
		"(2, +∞]",
		"abc", // nonsense
		"(",   // malformed
		"(1)", // missing comma
		"[3, 1]",
		">=",
		"<x",
		"[1, y)",
	}

	for _, s := range errCases {
		if _, err := Parse(s, strconv.Atoi); err == nil {
			t.Fatalf("expected Parse(%q) to return error, got nil", s)
		}
	}
}

func TestParse_ValidIntervalsAndOperators(t *testing.T) {
	cases := []struct {
		name string
		s    string
		exp  Interval[int]
	}{
		{"inclusive", "[1,3]", Closed(1, 3)},
		{"exclusive", "(1,3)", Open(1, 3)},
		{"left_infinite_right_inclusive", "(,5]", AtMost(5)},
		{"left_inclusive_right_infinite", "[3,)", AtLeast(3)},
		{"whitespace", "[ -2 , 4 )", ClosedOpen(-2, 4)},
		{"both_infinite_open", "(,)", Unbounded[int]()},
		{"infinity_symbols", "(-∞, +∞)", Unbounded[int]()},
		{"infinity_words", "(-inf, 7]", AtMost(7)},
		{"bare_infinity", "(3, ∞)", GreaterThan(3)},
		{"plain_integer", "42", Singleton(42)},
		{"negative_integer", "-42", Singleton(-42)},
		{"equals_prefix", "=42", Singleton(42)},
		{"greater_than", ">5", GreaterThan(5)},
		{"greater_or_equal", ">=5", AtLeast(5)},
		{"less_than", "<10", LessThan(10)},
		{"less_or_equal", "<= 10", AtMost(10)},
		{"equal_open_bounds_are_empty", "(1,1)", Empty[int]()},
		{"equal_half_open_bounds_are_empty", "[1,1)", Empty[int]()},
		{"equal_closed_bounds", "[1,1]", Singleton(1)},
		{"empty_symbol", "∅", Empty[int]()},
		{"empty_braces", "{}", Empty[int]()},
		{"empty_word", "empty", Empty[int]()},
	}

	for _, tc := range cases {
		got, err := Parse(tc.s, strconv.Atoi)
		if err != nil {
			t.Fatalf("%s: Parse(%q) returned error: %v", tc.name, tc.s, err)
		}
		if got != tc.exp {
			t.Fatalf("%s: Parse(%q) = %s, want %s", tc.name, tc.s, got, tc.exp)
		}
	}
}

func TestParse_StringRoundTrip(t *testing.T) {
	float := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	for _, iv := range []Interval[float64]{
		Closed(-1.5, 2.25),
		OpenClosed(0, 1e-9),
		AtLeast(3.0),
		LessThan(-0.5),
		Unbounded[float64](),
		Empty[float64](),
	} {
		back, err := Parse(iv.String(), float)
		if err != nil || back != iv {
			t.Fatalf("Parse(%q) = %s, %v", iv.String(), back, err)
		}
	}

	for _, iv := range []Interval[time.Duration]{
		ClosedOpen(time.Second, time.Minute),
		GreaterThan(90 * time.Millisecond),
	} {
		back, err := Parse(iv.String(), time.ParseDuration)
		if err != nil || back != iv {
			t.Fatalf("Parse(%q) = %s, %v", iv.String(), back, err)
		}
	}
}

func TestParse_InfinityWordsAreStringBounds(t *testing.T) {
	text := func(s string) (string, error) { return s, nil }
	cases := []struct {
		s   string
		exp Interval[string]
	}{
		{"(inf, z)", Open("inf", "z")},
		{"[-inf, z]", Closed("-inf", "z")},
		{"[+inf, z]", Closed("+inf", "z")},
		{"(-∞, z)", LessThan("z")},
		{"(a, ∞)", GreaterThan("a")},
		{"(, z]", AtMost("z")},
		{"inf", Singleton("inf")},
	}

	for _, tc := range cases {
		got, err := Parse(tc.s, text)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.s, err)
		}
		if got != tc.exp {
			t.Fatalf("Parse(%q) = %s, want %s", tc.s, got, tc.exp)
		}
	}

	for _, iv := range []Interval[string]{LessThan("m"), AtLeast("inf"), Unbounded[string]()} {
		back, err := Parse(iv.String(), text)
		if err != nil || back != iv {
			t.Fatalf("Parse(%q) = %s, %v", iv.String(), back, err)
		}
	}
}

func TestParse_NaNIsRejected(t *testing.T) {
	float := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	for _, s := range []string{"NaN", "[NaN, 1]", ">nan"} {
		if _, err := Parse(s, float); err == nil {
			t.Fatalf("expected Parse(%q) to return error, got nil", s)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("[a, c)", func(s string) (string, error) { return s, nil }); got != ClosedOpen("a", "c") {
		t.Fatalf("MustParse = %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse did not panic on bad input")
		}
	}()
	MustParse("[2, 1]", strconv.Atoi)
}
