// Package engine executes compiled wildmatch patterns against byte slices.
//
// An Engine is built once from a compiled section sequence and is immutable
// afterwards; a single Engine may serve any number of concurrent queries
// without synchronization. The scan itself is strictly left-to-right and
// first-fit: once a section's occurrence is fixed, later sections search only
// the remainder after it, which is sufficient because a leftmost placement is
// always extensible to a full match when one exists.
package engine

import (
	"github.com/coregx/wildmatch/section"
)

// Engine runs match queries for one compiled pattern.
type Engine struct {
	seq  *section.Seq
	plan Plan

	// Per-section state materialized from the sequence so the hot path never
	// converts or re-derives strings.
	secs     []section.Section
	literals [][]byte
	needles  [][]byte

	unknown       byte
	exact         bool
	anchoredStart bool
	anchoredEnd   bool
	minLen        int
}

// New builds an engine for a compiled sequence.
func New(seq *section.Seq) *Engine {
	e := &Engine{
		seq:           seq,
		plan:          selectPlan(seq),
		secs:          make([]section.Section, seq.Len()),
		literals:      make([][]byte, seq.Len()),
		needles:       make([][]byte, seq.Len()),
		unknown:       seq.Unknown(),
		exact:         seq.Exact(),
		anchoredStart: seq.AnchoredStart(),
		anchoredEnd:   seq.AnchoredEnd(),
		minLen:        seq.MinLen(),
	}
	for i := 0; i < seq.Len(); i++ {
		e.secs[i] = seq.Get(i)
		e.literals[i] = []byte(seq.Literal(i))
		e.needles[i] = []byte(seq.SearchSubstring(i))
	}
	return e
}

// Seq returns the compiled sequence the engine was built from.
func (e *Engine) Seq() *section.Seq { return e.seq }

// Plan returns the scan plan selected for the pattern.
func (e *Engine) Plan() Plan { return e.plan }

// matchHere reports whether lit matches b at pos, treating the unknown token
// in lit as matching any single byte. The caller guarantees pos+len(lit) is
// in bounds.
func (e *Engine) matchHere(b []byte, pos int, lit []byte) bool {
	for j := 0; j < len(lit); j++ {
		if c := lit[j]; c != e.unknown && b[pos+j] != c {
			return false
		}
	}
	return true
}
