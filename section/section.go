// Package section implements the wildmatch pattern compiler.
//
// A pattern is compiled into an ordered sequence of sections: maximal runs of
// non-anything-token characters, each carrying the counts of unknown tokens
// trimmed from its edges and a chosen search substring that drives the match
// engine's substring scan. Compilation runs once; the resulting Seq is
// immutable and safe for concurrent use.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// Compilation errors.
var (
	// ErrEmptyPattern indicates an empty pattern was given to Compile.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrTokenConflict indicates the unknown and anything tokens resolve to
	// the same byte.
	ErrTokenConflict = errors.New("unknown and anything tokens are equal")
)

// Default wildcard tokens.
const (
	DefaultUnknownToken  = '?'
	DefaultAnythingToken = '*'
)

// Config controls pattern compilation. The zero value selects the default
// tokens and partial matching.
type Config struct {
	// UnknownToken matches exactly one byte. Zero selects '?'.
	UnknownToken byte
	// AnythingToken matches zero or more bytes. Zero selects '*'.
	AnythingToken byte
	// Exact requires the pattern to cover the whole subject range; it is the
	// sole source of anchoring.
	Exact bool
}

func (c Config) withDefaults() Config {
	if c.UnknownToken == 0 {
		c.UnknownToken = DefaultUnknownToken
	}
	if c.AnythingToken == 0 {
		c.AnythingToken = DefaultAnythingToken
	}
	return c
}

// Section is one maximal run of non-anything-token characters in a compiled
// pattern. Sections are value types, built during compilation and never
// modified afterwards.
type Section struct {
	// LiteralStart and LiteralLen locate the section's literal span in the
	// pattern text. The span excludes the unknown-token runs trimmed from the
	// edges but may contain unknown tokens internally.
	LiteralStart int
	LiteralLen   int

	// LeadingUnknowns and TrailingUnknowns count the unknown tokens bordering
	// the literal span. After compilation only a pattern's first section may
	// carry LeadingUnknowns; interior boundaries are expressed as the
	// previous section's TrailingUnknowns.
	LeadingUnknowns  int
	TrailingUnknowns int

	// SearchOffset and SearchLen locate the chosen search substring within
	// the literal span: the internally unknown-free run judged least prone
	// to false-positive hits during substring search.
	SearchOffset int
	SearchLen    int
}

// IsGap reports whether the section has no literal content, only unknown
// tokens. At most two gap sections survive compilation: a first section (no
// previous section to absorb it) and a final section kept under end
// anchoring.
func (s Section) IsGap() bool {
	return s.LiteralLen == 0
}

// Width returns the exact number of subject bytes the section consumes.
func (s Section) Width() int {
	return s.LeadingUnknowns + s.LiteralLen + s.TrailingUnknowns
}

// HasPrefix reports whether literal content precedes the search substring.
func (s Section) HasPrefix() bool {
	return s.SearchOffset > 0
}

// HasSuffix reports whether literal content follows the search substring.
func (s Section) HasSuffix() bool {
	return s.SearchOffset+s.SearchLen < s.LiteralLen
}

// Seq is a compiled pattern: the ordered sections plus the anchoring and
// size facts derived at compile time. A Seq is immutable after Compile and
// safe for unsynchronized concurrent use.
type Seq struct {
	format   string
	sections []Section

	unknown  byte
	anything byte
	exact    bool

	anchoredStart bool
	anchoredEnd   bool
	minLen        int
}

// Format returns the original pattern text.
func (s *Seq) Format() string { return s.format }

// Len returns the number of sections.
func (s *Seq) Len() int { return len(s.sections) }

// IsEmpty reports whether the pattern compiled to no sections at all, the
// sentinel for a pattern consisting only of anything tokens. Such a pattern
// matches every subject with the canonical (start, 0) result.
func (s *Seq) IsEmpty() bool { return len(s.sections) == 0 }

// Get returns the i-th section.
func (s *Seq) Get(i int) Section { return s.sections[i] }

// AnchoredStart reports whether a match must begin at the subject range
// start: exact mode with a pattern not beginning with the anything token.
func (s *Seq) AnchoredStart() bool { return s.anchoredStart }

// AnchoredEnd reports whether a match must end at the subject range end:
// exact mode with a pattern not ending with the anything token.
func (s *Seq) AnchoredEnd() bool { return s.anchoredEnd }

// MinLen returns the minimum subject length that can possibly match: the sum
// of all section widths. Shorter ranges are rejected without scanning.
func (s *Seq) MinLen() int { return s.minLen }

// Unknown returns the resolved unknown token byte.
func (s *Seq) Unknown() byte { return s.unknown }

// Anything returns the resolved anything token byte.
func (s *Seq) Anything() byte { return s.anything }

// Exact reports whether the pattern was compiled for exact matching.
func (s *Seq) Exact() bool { return s.exact }

// Literal returns the i-th section's literal span. The result may contain
// unknown tokens; it never contains the anything token.
func (s *Seq) Literal(i int) string {
	sec := s.sections[i]
	return s.format[sec.LiteralStart : sec.LiteralStart+sec.LiteralLen]
}

// SearchSubstring returns the i-th section's chosen search substring: a
// contiguous, unknown-free subrange of the literal span.
func (s *Seq) SearchSubstring(i int) string {
	sec := s.sections[i]
	start := sec.LiteralStart + sec.SearchOffset
	return s.format[start : start+sec.SearchLen]
}

// String returns a compact debug representation of the compiled sections.
func (s *Seq) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "seq{%q", s.format)
	if s.anchoredStart {
		b.WriteString(" ^")
	}
	for i, sec := range s.sections {
		fmt.Fprintf(&b, " [%d]%d?%q?%d", i, sec.LeadingUnknowns, s.Literal(i), sec.TrailingUnknowns)
		if sec.SearchLen != sec.LiteralLen {
			fmt.Fprintf(&b, " search=%q", s.SearchSubstring(i))
		}
	}
	if s.anchoredEnd {
		b.WriteString(" $")
	}
	fmt.Fprintf(&b, " min=%d}", s.minLen)
	return b.String()
}
