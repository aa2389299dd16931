package wildmatch

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/wildmatch/section"
)

// Set matches many patterns against a subject in a single pass.
//
// Each pattern contributes one required literal (the most selective search
// substring of its sections) to a shared Aho-Corasick automaton. A query
// sweeps the subject once; only patterns whose literal actually occurs are
// verified with a full engine run, memoized per query. Patterns with no
// usable literal (nothing but wildcard tokens) are verified directly on
// every query, which is cheap since they contain no sections to search for.
//
// A Set is immutable and safe for concurrent use.
//
// Example:
//
//	set, err := wildmatch.CompileSet([]string{
//	    "*.log", "report-??.txt", "*core*",
//	}, wildmatch.ExactMatch)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	set.MatchString("report-07.txt")       // true
//	set.Matching([]byte("core.log"))       // [0 2]
type Set struct {
	patterns []*Pattern

	// unfiltered holds indices of patterns without a prefilter literal.
	unfiltered []int

	auto     *ahocorasick.Automaton
	litIndex map[string]int
	owners   [][]int

	// degraded is set when the automaton could not be built; queries then
	// verify every pattern.
	degraded bool
}

// CompileSet compiles every pattern with the default tokens and builds a set
// over them. All patterns share one mode. Compilation fails on the first
// invalid pattern with its *InvalidPatternError.
func CompileSet(patterns []string, mode Mode) (*Set, error) {
	return CompileSetWithConfig(patterns, mode, DefaultConfig())
}

// CompileSetWithConfig compiles every pattern with custom tokens and builds
// a set over them.
func CompileSetWithConfig(patterns []string, mode Mode, config Config) (*Set, error) {
	s := &Set{patterns: make([]*Pattern, len(patterns))}

	type ownedLiteral struct {
		text  string
		owner int
	}
	var lits []ownedLiteral
	for i, raw := range patterns {
		p, err := CompileWithConfig(raw, mode, config)
		if err != nil {
			return nil, err
		}
		s.patterns[i] = p
		if best := bestLiteral(p.seq); best != "" {
			lits = append(lits, ownedLiteral{text: best, owner: i})
		} else {
			s.unfiltered = append(s.unfiltered, i)
		}
	}
	if len(lits) == 0 {
		return s, nil
	}

	// Keep only literals that contain no other literal as a substring,
	// folding the owners of a dropped literal into its survivor. Any subject
	// containing the dropped literal also contains the survivor, so no owner
	// escapes verification. The surviving literals are pairwise
	// non-containing, so no two of them can match at the same position.
	sort.SliceStable(lits, func(i, j int) bool {
		return len(lits[i].text) < len(lits[j].text)
	})
	var texts []string
	var owners [][]int
next:
	for _, lit := range lits {
		for k, kept := range texts {
			if strings.Contains(lit.text, kept) {
				owners[k] = append(owners[k], lit.owner)
				continue next
			}
		}
		texts = append(texts, lit.text)
		owners = append(owners, []int{lit.owner})
	}

	builder := ahocorasick.NewBuilder()
	for _, t := range texts {
		builder.AddPattern([]byte(t))
	}
	auto, err := builder.Build()
	if err != nil {
		s.degraded = true
		return s, nil
	}
	s.auto = auto
	s.owners = owners
	s.litIndex = make(map[string]int, len(texts))
	for i, t := range texts {
		s.litIndex[t] = i
	}
	return s, nil
}

// bestLiteral picks the pattern's most selective required literal: the
// longest of its sections' search substrings. Every match of the pattern
// contains each of those substrings verbatim, so any one of them is a sound
// prefilter. Returns "" when the pattern has no literal content.
func bestLiteral(seq *section.Seq) string {
	best := ""
	for i := 0; i < seq.Len(); i++ {
		if sub := seq.SearchSubstring(i); len(sub) > len(best) {
			best = sub
		}
	}
	return best
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Pattern returns the i-th compiled pattern, in CompileSet order.
func (s *Set) Pattern(i int) *Pattern {
	return s.patterns[i]
}

// Match reports whether any pattern in the set matches b.
func (s *Set) Match(b []byte) bool {
	if s.degraded {
		for _, p := range s.patterns {
			if p.Match(b) {
				return true
			}
		}
		return false
	}
	for _, i := range s.unfiltered {
		if s.patterns[i].Match(b) {
			return true
		}
	}
	if s.auto == nil {
		return false
	}
	decided := make([]int8, len(s.patterns))
	for at := 0; at < len(b); {
		m := s.auto.Find(b, at)
		if m == nil {
			break
		}
		for _, pi := range s.owners[s.litIndex[string(b[m.Start:m.End])]] {
			if decided[pi] != 0 {
				continue
			}
			if s.patterns[pi].Match(b) {
				return true
			}
			decided[pi] = -1
		}
		// Surviving literals never match at the same position, so one byte
		// past each hit start enumerates every occurrence.
		at = m.Start + 1
	}
	return false
}

// MatchString reports whether any pattern in the set matches s.
func (s *Set) MatchString(subject string) bool {
	return s.Match([]byte(subject))
}

// Matching returns the indices of all patterns that match b, in ascending
// order. A nil result means no pattern matched.
func (s *Set) Matching(b []byte) []int {
	var out []int
	if s.degraded {
		for i, p := range s.patterns {
			if p.Match(b) {
				out = append(out, i)
			}
		}
		return out
	}
	decided := make([]int8, len(s.patterns))
	for _, i := range s.unfiltered {
		decided[i] = verdict(s.patterns[i].Match(b))
	}
	if s.auto != nil {
		for at := 0; at < len(b); {
			m := s.auto.Find(b, at)
			if m == nil {
				break
			}
			for _, pi := range s.owners[s.litIndex[string(b[m.Start:m.End])]] {
				if decided[pi] == 0 {
					decided[pi] = verdict(s.patterns[pi].Match(b))
				}
			}
			at = m.Start + 1
		}
	}
	for i := range s.patterns {
		if decided[i] > 0 {
			out = append(out, i)
		}
	}
	return out
}

// MatchingString returns the indices of all patterns that match the string
// subject, in ascending order.
func (s *Set) MatchingString(subject string) []int {
	return s.Matching([]byte(subject))
}

func verdict(matched bool) int8 {
	if matched {
		return 1
	}
	return -1
}
