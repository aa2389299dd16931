// Package wildmatch provides compiled wildcard pattern matching for Go.
//
// A pattern mixes literal text with two wildcard tokens: '?' matches exactly
// one byte and '*' matches any run of bytes, including none. A pattern is
// compiled once into an immutable sequence of literal sections and then run
// against any number of subjects in one of two modes: ExactMatch must cover
// a whole subject range, Partial finds occurrences anywhere inside it.
//
// The matcher is not regex-based:
//   - Compilation splits the pattern on '*', trims '?' runs into per-section
//     counts, and picks a search substring per section.
//   - Matching is a single left-to-right scan driven by SWAR-accelerated
//     substring search, with no backtracking across sections.
//   - Worst case is O(len(subject) * sections); the common case is a handful
//     of substring scans and no allocation.
//
// Basic usage:
//
//	p, err := wildmatch.Compile("20??-01-01*", wildmatch.ExactMatch)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.MatchString("2024-01-01-final") // true
//
//	// Find occurrences anywhere
//	p = wildmatch.MustCompile("*abc*", wildmatch.Partial)
//	start, length := p.FindString("xxabcxx")
//	// start == 2, length == 3
//
// Advanced usage:
//
//	// Custom wildcard tokens (SQL LIKE style)
//	config := wildmatch.DefaultConfig()
//	config.UnknownToken = '_'
//	config.AnythingToken = '%'
//	p, err := wildmatch.CompileWithConfig("190_-%", wildmatch.Partial, config)
//
// Matching compares bytes ordinally; there is no case folding and no
// locale-aware collation. All positions and lengths are byte offsets.
package wildmatch

import (
	"iter"
	"strconv"
	"strings"

	"github.com/coregx/wildmatch/engine"
	"github.com/coregx/wildmatch/section"
)

// Mode selects how much of the subject a pattern must cover.
type Mode int

const (
	// ExactMatch requires the pattern to cover the entire subject range.
	ExactMatch Mode = iota

	// Partial matches the pattern anywhere inside the subject range.
	Partial
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ExactMatch:
		return "ExactMatch"
	case Partial:
		return "Partial"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Config holds the wildcard tokens used during compilation.
type Config struct {
	// UnknownToken matches exactly one byte. Zero selects '?'.
	UnknownToken byte

	// AnythingToken matches zero or more bytes. Zero selects '*'.
	AnythingToken byte
}

// DefaultConfig returns the default wildcard tokens, '?' and '*'.
//
// Users can customize this and pass it to CompileWithConfig:
//
//	config := wildmatch.DefaultConfig()
//	config.AnythingToken = '%'
//	p, _ := wildmatch.CompileWithConfig("abc%", wildmatch.Partial, config)
func DefaultConfig() Config {
	return Config{
		UnknownToken:  section.DefaultUnknownToken,
		AnythingToken: section.DefaultAnythingToken,
	}
}

// Pattern is a compiled wildcard pattern.
//
// A Pattern is immutable and safe to use concurrently from any number of
// goroutines.
//
// Example:
//
//	p := wildmatch.MustCompile("report-??.txt", wildmatch.ExactMatch)
//	if p.MatchString("report-07.txt") {
//	    println("matched!")
//	}
type Pattern struct {
	seq    *section.Seq
	engine *engine.Engine
	mode   Mode
}

// Compile compiles a wildcard pattern with the default tokens.
//
// It fails with an *InvalidPatternError if the pattern is empty.
//
// Example:
//
//	p, err := wildmatch.Compile("*.log", wildmatch.ExactMatch)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string, mode Mode) (*Pattern, error) {
	return CompileWithConfig(pattern, mode, DefaultConfig())
}

// MustCompile compiles a wildcard pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var logPattern = wildmatch.MustCompile("*.log", wildmatch.ExactMatch)
func MustCompile(pattern string, mode Mode) *Pattern {
	p, err := Compile(pattern, mode)
	if err != nil {
		panic("wildmatch: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a wildcard pattern with custom tokens.
//
// It fails with an *InvalidPatternError if the pattern is empty or the two
// tokens resolve to the same byte.
//
// Example:
//
//	config := wildmatch.Config{UnknownToken: '_', AnythingToken: '%'}
//	p, err := wildmatch.CompileWithConfig("19__-%", wildmatch.ExactMatch, config)
func CompileWithConfig(pattern string, mode Mode, config Config) (*Pattern, error) {
	seq, err := section.Compile(pattern, section.Config{
		UnknownToken:  config.UnknownToken,
		AnythingToken: config.AnythingToken,
		Exact:         mode == ExactMatch,
	})
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return &Pattern{
		seq:    seq,
		engine: engine.New(seq),
		mode:   mode,
	}, nil
}

// Match reports whether the pattern matches b: the whole slice in ExactMatch
// mode, any substring of it in Partial mode.
//
// Example:
//
//	p := wildmatch.MustCompile("a*b", wildmatch.ExactMatch)
//	p.Match([]byte("ab"))   // true: '*' matches zero bytes
//	p.Match([]byte("aXXb")) // true
func (p *Pattern) Match(b []byte) bool {
	_, l := p.engine.Find(b, 0, len(b))
	return l >= 0
}

// MatchString reports whether the pattern matches the string s.
func (p *Pattern) MatchString(s string) bool {
	return p.Match([]byte(s))
}

// MatchRange reports whether the pattern matches inside b[start:start+length].
// It fails with a *RangeError when the range falls outside b.
func (p *Pattern) MatchRange(b []byte, start, length int) (bool, error) {
	if err := checkRange(start, length, len(b)); err != nil {
		return false, err
	}
	_, l := p.engine.Find(b, start, length)
	return l >= 0, nil
}

// Find returns the (start, length) pair of the first match in b. A length of
// -1 means no match; 0 is reserved for patterns consisting only of the
// anything token, which match everywhere with width zero. The start value is
// meaningful only when length >= 0.
//
// Example:
//
//	p := wildmatch.MustCompile("t?e", wildmatch.Partial)
//	start, length := p.Find([]byte("in the end"))
//	// start == 3, length == 3
func (p *Pattern) Find(b []byte) (start, length int) {
	return p.engine.Find(b, 0, len(b))
}

// FindString returns the (start, length) pair of the first match in s, with
// the same sentinels as Find.
func (p *Pattern) FindString(s string) (start, length int) {
	return p.Find([]byte(s))
}

// FindRange returns the (start, length) pair of the first match inside
// b[start:start+length], with the same sentinels as Find. It fails with a
// *RangeError when the range falls outside b.
func (p *Pattern) FindRange(b []byte, start, length int) (int, int, error) {
	if err := checkRange(start, length, len(b)); err != nil {
		return start, -1, err
	}
	s, l := p.engine.Find(b, start, length)
	return s, l, nil
}

// Matches returns an iterator over the (start, length) pairs of successive
// matches in b. The sequence is finite, restartable, and yields
// non-overlapping results in Partial mode; ExactMatch patterns yield at most
// one result, and pure anything-token patterns yield exactly one zero-width
// result.
//
// Example:
//
//	p := wildmatch.MustCompile("a?c", wildmatch.Partial)
//	for start, length := range p.Matches([]byte("abc axc")) {
//	    fmt.Println(start, length)
//	}
//	// Output:
//	// 0 3
//	// 4 3
func (p *Pattern) Matches(b []byte) iter.Seq2[int, int] {
	return p.engine.Matches(b, 0, len(b))
}

// MatchesString returns an iterator over the (start, length) pairs of
// successive matches in s, with the same semantics as Matches.
func (p *Pattern) MatchesString(s string) iter.Seq2[int, int] {
	return p.Matches([]byte(s))
}

// MatchesRange returns an iterator over successive matches inside
// b[start:start+length], with the same semantics as Matches. It fails with a
// *RangeError when the range falls outside b.
func (p *Pattern) MatchesRange(b []byte, start, length int) (iter.Seq2[int, int], error) {
	if err := checkRange(start, length, len(b)); err != nil {
		return nil, err
	}
	return p.engine.Matches(b, start, length), nil
}

// FindAll returns the (start, length) pairs of successive matches in b, each
// as a two-element []int. If n >= 0 it returns at most n matches; otherwise
// all of them. A nil result means no matches.
//
// Example:
//
//	p := wildmatch.MustCompile("ab", wildmatch.Partial)
//	p.FindAll([]byte("ab ab"), -1) // [[0 2] [3 2]]
func (p *Pattern) FindAll(b []byte, n int) [][]int {
	return p.engine.FindAll(b, 0, len(b), n)
}

// FindAllString returns the (start, length) pairs of successive matches in
// s, with the same limit semantics as FindAll.
func (p *Pattern) FindAllString(s string, n int) [][]int {
	return p.FindAll([]byte(s), n)
}

// Count returns the number of non-overlapping matches in b. If n > 0 it
// counts at most n matches; n <= 0 counts them all.
func (p *Pattern) Count(b []byte, n int) int {
	return p.engine.Count(b, 0, len(b), n)
}

// CountString returns the number of non-overlapping matches in s, with the
// same limit semantics as Count.
func (p *Pattern) CountString(s string, n int) int {
	return p.Count([]byte(s), n)
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.seq.Format()
}

// Mode returns the match mode the pattern was compiled for.
func (p *Pattern) Mode() Mode {
	return p.mode
}

// MinLen returns the minimum subject length that can possibly match. Any
// range shorter than this is rejected without scanning.
func (p *Pattern) MinLen() int {
	return p.seq.MinLen()
}

// Literal returns the pattern text and true when the pattern contains no
// wildcard tokens at all, so matching degenerates to plain string
// comparison in ExactMatch mode or substring search in Partial mode.
func (p *Pattern) Literal() (string, bool) {
	f := p.seq.Format()
	if strings.IndexByte(f, p.seq.Unknown()) >= 0 || strings.IndexByte(f, p.seq.Anything()) >= 0 {
		return "", false
	}
	return f, true
}
