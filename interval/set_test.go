package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_AddMergesUnifiableMembers(t *testing.T) {
	cases := []struct {
		name string
		in   []Interval[int]
		want []Interval[int]
	}{
		{"overlapping", []Interval[int]{Closed(0, 1), ClosedOpen(1, 2)}, []Interval[int]{ClosedOpen(0, 2)}},
		{"touching", []Interval[int]{ClosedOpen(0, 1), Closed(1, 2)}, []Interval[int]{Closed(0, 2)}},
		{"gap_at_one_value", []Interval[int]{Open(0, 1), Open(1, 2)}, []Interval[int]{Open(0, 1), Open(1, 2)}},
		{"bridge", []Interval[int]{Closed(0, 1), Closed(3, 4), Open(1, 3)}, []Interval[int]{Closed(0, 4)}},
		{"unordered", []Interval[int]{Closed(8, 9), Closed(0, 1), Closed(4, 5)}, []Interval[int]{Closed(0, 1), Closed(4, 5), Closed(8, 9)}},
		{"included", []Interval[int]{Closed(0, 10), Open(2, 3)}, []Interval[int]{Closed(0, 10)}},
		{"empty_ignored", []Interval[int]{Empty[int](), Singleton(5), Open(7, 7)}, []Interval[int]{Singleton(5)}},
		{"unbounded_absorbs", []Interval[int]{Closed(0, 1), Unbounded[int](), AtLeast(5)}, []Interval[int]{Unbounded[int]()}},
	}

	for _, tc := range cases {
		got := NewSet(tc.in...).Intervals()
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: NewSet() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestSet_Remove(t *testing.T) {
	s := NewSet(Closed(0, 10), Closed(20, 30))

	cases := []struct {
		name string
		cut  Interval[int]
		want []Interval[int]
	}{
		{"split", Open(3, 5), []Interval[int]{Closed(0, 3), Closed(5, 10), Closed(20, 30)}},
		{"across_members", Closed(5, 25), []Interval[int]{ClosedOpen(0, 5), OpenClosed(25, 30)}},
		{"whole_member", Closed(0, 10), []Interval[int]{Closed(20, 30)}},
		{"outside", Open(10, 20), []Interval[int]{Closed(0, 10), Closed(20, 30)}},
		{"endpoint", Singleton(10), []Interval[int]{ClosedOpen(0, 10), Closed(20, 30)}},
	}

	for _, tc := range cases {
		got := s.Remove(tc.cut).Intervals()
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: Remove(%s) mismatch (-want +got):\n%s", tc.name, tc.cut, diff)
		}
	}

	if !s.Remove(Unbounded[int]()).IsEmpty() {
		t.Fatalf("removing everything left %s", s.Remove(Unbounded[int]()))
	}
	if s.Len() != 2 {
		t.Fatalf("Remove modified the receiver: %s", s)
	}
}

func TestSet_Complement(t *testing.T) {
	s := NewSet(Closed(0, 1), Open(2, 3))
	want := []Interval[int]{LessThan(0), OpenClosed(1, 2), AtLeast(3)}
	if diff := cmp.Diff(want, s.Complement().Intervals()); diff != "" {
		t.Fatalf("Complement() mismatch (-want +got):\n%s", diff)
	}
	if !s.Complement().Complement().Equal(s) {
		t.Fatalf("double complement of %s = %s", s, s.Complement().Complement())
	}

	var empty Set[int]
	if !empty.Complement().IsUnbounded() {
		t.Fatalf("complement of the empty set = %s", empty.Complement())
	}
	if !NewSet(Unbounded[int]()).Complement().IsEmpty() {
		t.Fatalf("complement of everything is not empty")
	}
}

func TestSet_UnionIntersect(t *testing.T) {
	a := NewSet(Closed(0, 5), Closed(10, 15))
	b := NewSet(Closed(3, 12), AtLeast(20))

	union := []Interval[int]{Closed(0, 15), AtLeast(20)}
	if diff := cmp.Diff(union, a.Union(b).Intervals()); diff != "" {
		t.Fatalf("Union() mismatch (-want +got):\n%s", diff)
	}

	inter := []Interval[int]{Closed(3, 5), Closed(10, 12)}
	if diff := cmp.Diff(inter, a.Intersect(b).Intervals()); diff != "" {
		t.Fatalf("Intersect() mismatch (-want +got):\n%s", diff)
	}

	if !a.Intersect(a.Complement()).IsEmpty() {
		t.Fatalf("a set meets its complement")
	}
	if !a.Union(a.Complement()).IsUnbounded() {
		t.Fatalf("a set and its complement do not cover everything")
	}
}

func TestSet_Queries(t *testing.T) {
	s := NewSet(Closed(0, 1), Open(2, 3))

	for x, want := range map[int]bool{-1: false, 0: true, 1: true, 2: false, 3: false, 4: false} {
		if got := s.Contains(x); got != want {
			t.Fatalf("%s.Contains(%d) = %v, want %v", s, x, got, want)
		}
	}

	includes := []struct {
		iv   Interval[int]
		want bool
	}{
		{Closed(0, 1), true},
		{OpenClosed(0, 1), true},
		{Empty[int](), true},
		{Closed(0, 3), false},
		{Closed(2, 3), false},
	}
	for _, tc := range includes {
		if got := s.Includes(tc.iv); got != tc.want {
			t.Fatalf("%s.Includes(%s) = %v, want %v", s, tc.iv, got, tc.want)
		}
	}

	if got := s.Span(); got != ClosedOpen(0, 3) {
		t.Fatalf("Span() = %s, want [0, 3)", got)
	}
	if got := s.String(); got != "{[0, 1], (2, 3)}" {
		t.Fatalf("String() = %q", got)
	}
	if s.Len() != 2 || s.IsEmpty() || s.IsUnbounded() {
		t.Fatalf("Len/IsEmpty/IsUnbounded = %d/%v/%v", s.Len(), s.IsEmpty(), s.IsUnbounded())
	}
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set[string]
	if !s.IsEmpty() || s.Len() != 0 || s.Intervals() != nil {
		t.Fatalf("zero Set is not empty")
	}
	if s.String() != "∅" || !s.Span().IsEmpty() || s.Contains("a") {
		t.Fatalf("zero Set = %s, span %s", s, s.Span())
	}
	if !s.Remove(Closed("a", "b")).IsEmpty() {
		t.Fatalf("Remove on the zero Set produced values")
	}
	if got := s.Add(Closed("a", "b")); !got.Equal(NewSet(Closed("a", "b"))) {
		t.Fatalf("Add on the zero Set = %s", got)
	}
}

func TestSet_EqualIgnoresConstruction(t *testing.T) {
	a := NewSet(Closed(0, 1), Closed(1, 2))
	b := NewSet(Closed(0, 2))
	if diff := cmp.Diff(b, a); diff != "" {
		t.Fatalf("sets differ (-want +got):\n%s", diff)
	}
	if a.Equal(NewSet(Closed(0, 2), Singleton(4))) {
		t.Fatalf("%s equals a larger set", a)
	}
}
