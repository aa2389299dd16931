package engine

import (
	"reflect"
	"testing"
)

func collect(e *Engine, b []byte, start, length int) [][2]int {
	var out [][2]int
	for s, l := range e.Matches(b, start, length) {
		out = append(out, [2]int{s, l})
	}
	return out
}

func TestMatchesPartial(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		subject string
		want    [][2]int
	}{
		{"two occurrences", "*abc*", "xxabcxxxabcxx", [][2]int{{2, 3}, {8, 3}}},
		{"adjacent occurrences", "*abc*", "xxabcxxabcxx", [][2]int{{2, 3}, {7, 3}}},
		{"back to back", "ab", "ababab", [][2]int{{0, 2}, {2, 2}, {4, 2}}},
		{"overlap suppressed", "aa", "aaaa", [][2]int{{0, 2}, {2, 2}}},
		{"single bytes", "a", "aba", [][2]int{{0, 1}, {2, 1}}},
		{"sections rescan after gap", "a?b", "axbayb", [][2]int{{0, 3}, {3, 3}}},
		{"no occurrences", "abc", "xyxyxy", nil},
		{"empty subject", "abc", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := compile(t, tt.format, false)
			got := collect(e, []byte(tt.subject), 0, len(tt.subject))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.format, tt.subject, got, tt.want)
			}
		})
	}
}

// TestMatchesProperties checks for every format/subject pair that partial
// results never overlap, appear left to right, and that each reported span
// fully matches the pattern on its own.
func TestMatchesProperties(t *testing.T) {
	for _, format := range crossFormats {
		e := compile(t, format, false)
		if e.Plan() != PlanScan {
			continue
		}
		for _, subject := range crossSubjects {
			prevEnd := 0
			for _, m := range collect(e, []byte(subject), 0, len(subject)) {
				s, l := m[0], m[1]
				if s < prevEnd {
					t.Errorf("Matches(%q, %q): result (%d, %d) overlaps previous end %d",
						format, subject, s, l, prevEnd)
				}
				if !matchRef(format, subject[s:s+l]) {
					t.Errorf("Matches(%q, %q): span %q does not match on its own",
						format, subject, subject[s:s+l])
				}
				prevEnd = s + l
			}
		}
	}
}

func TestMatchesExactYieldsAtMostOne(t *testing.T) {
	e := compile(t, "a*b", true)
	if got := collect(e, []byte("aXXb"), 0, 4); !reflect.DeepEqual(got, [][2]int{{0, 4}}) {
		t.Errorf("Matches = %v, want [(0, 4)]", got)
	}
	if got := collect(e, []byte("zzzz"), 0, 4); got != nil {
		t.Errorf("Matches on mismatch = %v, want none", got)
	}
}

func TestMatchesAllAnything(t *testing.T) {
	for _, exact := range []bool{true, false} {
		e := compile(t, "**", exact)
		if got := collect(e, []byte("abc"), 0, 3); !reflect.DeepEqual(got, [][2]int{{0, 0}}) {
			t.Errorf("Matches(exact=%v) = %v, want [(0, 0)]", exact, got)
		}
		if got := collect(e, []byte(""), 0, 0); !reflect.DeepEqual(got, [][2]int{{0, 0}}) {
			t.Errorf("Matches(exact=%v) on empty = %v, want [(0, 0)]", exact, got)
		}
		// The zero-width result sits at the range start, wherever that is.
		if got := collect(e, []byte("abcdefg"), 3, 2); !reflect.DeepEqual(got, [][2]int{{3, 0}}) {
			t.Errorf("Matches(exact=%v) at offset = %v, want [(3, 0)]", exact, got)
		}
	}
}

func TestMatchesRestartable(t *testing.T) {
	e := compile(t, "ab", false)
	b := []byte("abxabxab")
	seq := e.Matches(b, 0, len(b))
	var first, second [][2]int
	for s, l := range seq {
		first = append(first, [2]int{s, l})
	}
	for s, l := range seq {
		second = append(second, [2]int{s, l})
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}
	if len(first) != 3 {
		t.Errorf("got %d matches, want 3", len(first))
	}
}

func TestMatchesEarlyBreak(t *testing.T) {
	e := compile(t, "a", false)
	var got [][2]int
	for s, l := range e.Matches([]byte("aaaa"), 0, 4) {
		got = append(got, [2]int{s, l})
		if len(got) == 2 {
			break
		}
	}
	if !reflect.DeepEqual(got, [][2]int{{0, 1}, {1, 1}}) {
		t.Errorf("got %v, want first two matches", got)
	}
}

func TestFindAllLimit(t *testing.T) {
	e := compile(t, "ab", false)
	b := []byte("ab ab ab ab")
	tests := []struct {
		n    int
		want [][]int
	}{
		{0, nil},
		{2, [][]int{{0, 2}, {3, 2}}},
		{-1, [][]int{{0, 2}, {3, 2}, {6, 2}, {9, 2}}},
		{10, [][]int{{0, 2}, {3, 2}, {6, 2}, {9, 2}}},
	}
	for _, tt := range tests {
		if got := e.FindAll(b, 0, len(b), tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindAll(n=%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		format  string
		subject string
		n       int
		want    int
	}{
		{"ab", "ab ab ab", -1, 3},
		{"ab", "ab ab ab", 2, 2},
		{"a?c", "abc axc azc", -1, 3},
		{"zz", "ab ab ab", -1, 0},
		{"*", "anything", -1, 1},
	}
	for _, tt := range tests {
		e := compile(t, tt.format, false)
		if got := e.Count([]byte(tt.subject), 0, len(tt.subject), tt.n); got != tt.want {
			t.Errorf("Count(%q, %q, %d) = %d, want %d", tt.format, tt.subject, tt.n, got, tt.want)
		}
	}
}
