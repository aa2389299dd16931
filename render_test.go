package wildmatch

import (
	"regexp"
	"strings"
	"testing"
)

func TestToRegexStandard(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    Mode
		want    string
	}{
		{"date prefix", "20??-01*", ExactMatch, "^20..-01.*"},
		{"contains", "*abc*", Partial, ".*abc.*"},
		{"internal unknown", "a?b", ExactMatch, "^a.b$"},
		{"internal anything", "a*b", ExactMatch, "^a.*b$"},
		{"pure anything", "*", ExactMatch, ".*"},
		{"pure anything partial", "*", Partial, ".*"},
		{"pure unknowns", "??", ExactMatch, "^..$"},
		{"suffix literal", "*abc", ExactMatch, ".*abc$"},
		{"prefix literal", "abc", Partial, "abc"},
		{"unknown then anything", "?*", ExactMatch, "^..*"},
		{"anything then unknown", "*?", ExactMatch, ".*.$"},
		{"escaped dot", "file.?", ExactMatch, `^file\..$`},
		{"escaped plus", "a+b*c", Partial, `a\+b.*c`},
		{"escaped alternation", "ab|cd", Partial, `ab\|cd`},
		{"escaped brackets", "[a]*(b)", Partial, `\[a\].*\(b\)`},
		{"collapsed anything run", "a**b", ExactMatch, "^a.*b$"},
		{"trailing gap keeps width", "abc*?", ExactMatch, `^abc.*.$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.pattern, tt.mode)
			if got := p.ToRegex(Standard); got != tt.want {
				t.Errorf("ToRegex(Standard) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToRegexSQLQuoted(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    Mode
		want    string
	}{
		{"date prefix", "20??-01*", ExactMatch, "'^20..-01.*'"},
		{"embedded quote doubled", "it's*", Partial, "'it''s.*'"},
		{"pure anything", "*", Partial, "'.*'"},
		{"quote only", "'", ExactMatch, "'^''$'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.pattern, tt.mode)
			if got := p.ToRegex(SQLQuoted); got != tt.want {
				t.Errorf("ToRegex(SQLQuoted) = %q, want %q", got, tt.want)
			}
		})
	}
}

// The SQL flavor is the standard body wrapped in quotes with embedded quotes
// doubled; nothing else may differ.
func TestToRegexDialectRelation(t *testing.T) {
	patterns := []string{"20??-01*", "it's*", "a'b'c", "*", "x?y"}
	for _, pattern := range patterns {
		for _, mode := range []Mode{ExactMatch, Partial} {
			p := MustCompile(pattern, mode)
			std := p.ToRegex(Standard)
			want := "'" + strings.ReplaceAll(std, "'", "''") + "'"
			if got := p.ToRegex(SQLQuoted); got != want {
				t.Errorf("%q %v: SQLQuoted = %q, want %q", pattern, mode, got, want)
			}
		}
	}
}

func TestToRegexDeterministic(t *testing.T) {
	p := MustCompile("a?b*c", ExactMatch)
	first := p.ToRegex(Standard)
	for i := 0; i < 3; i++ {
		if got := p.ToRegex(Standard); got != first {
			t.Fatalf("ToRegex changed between calls: %q then %q", first, got)
		}
	}
	// Rendering must not disturb matching state.
	if !p.MatchString("aXbYYc") {
		t.Error("MatchString failed after ToRegex")
	}
}

// Every rendered expression must agree with the matcher itself: compiling the
// output with regexp and testing the same subjects yields the same verdicts.
// (?s) makes '.' cover newlines the way an unknown token does.
func TestToRegexStdlibAgreement(t *testing.T) {
	formats := []string{
		"20??-01*", "*abc*", "a?b", "a*b", "*", "?", "??", "abc",
		"*abc", "abc*", "?*", "*?", "x*?y?*?z?", "a+b*c", "[a]*(b)",
		"file.?", "ab|cd", "a{2}?", "a?", "?a", "*a*b*", "ab*ab",
	}
	subjects := []string{
		"", "a", "ab", "abc", "zabcz", "2024-01-01-final", "1999-01-01",
		"a+b!c", "ab|cd", "xxabcxxabcxx", "file.x", "x1yABzC!",
		"a\nb", "[a]x(b)", "a{2}x", "abXab", "aXbYc",
	}
	for _, format := range formats {
		for _, mode := range []Mode{ExactMatch, Partial} {
			p := MustCompile(format, mode)
			re, err := regexp.Compile("(?s)" + p.ToRegex(Standard))
			if err != nil {
				t.Fatalf("%q %v: rendered %q does not compile: %v",
					format, mode, p.ToRegex(Standard), err)
			}
			for _, subject := range subjects {
				want := re.MatchString(subject)
				got := p.MatchString(subject)
				if got != want {
					t.Errorf("%q %v on %q: Match = %v, regexp %q = %v",
						format, mode, subject, got, re.String(), want)
				}
			}
		}
	}
}

func TestDialectString(t *testing.T) {
	if Standard.String() != "Standard" || SQLQuoted.String() != "SQLQuoted" {
		t.Errorf("dialect names = %q, %q", Standard.String(), SQLQuoted.String())
	}
	if got := Dialect(5).String(); got != "Dialect(5)" {
		t.Errorf("Dialect(5).String() = %q", got)
	}
}
