package engine

import (
	"github.com/coregx/wildmatch/simd"
)

// Find runs a single match attempt over b[start:start+length] and returns a
// (start, length) pair. A length of -1 means no match; 0 is returned only
// for patterns with no sections, which match every range. The caller
// guarantees 0 <= start and start+length <= len(b).
func (e *Engine) Find(b []byte, start, length int) (int, int) {
	if length < e.minLen {
		return start, -1
	}
	n := len(e.secs)
	if n == 0 {
		return start, 0
	}

	end := start + length
	cursor := start
	limit := end
	matchStart := -1
	first, last := 0, n

	if e.anchoredStart {
		sec := e.secs[0]
		litPos := start + sec.LeadingUnknowns
		if !e.matchHere(b, litPos, e.literals[0]) {
			return start, -1
		}
		cursor = litPos + sec.LiteralLen + sec.TrailingUnknowns
		matchStart = start
		first = 1
		if n == 1 {
			if e.anchoredEnd && cursor != end {
				return start, -1
			}
			return e.result(matchStart, cursor, end)
		}
	}

	if e.anchoredEnd {
		sec := e.secs[n-1]
		secStart := end - sec.Width()
		if secStart < cursor {
			return start, -1
		}
		if !sec.IsGap() && !e.matchHere(b, secStart+sec.LeadingUnknowns, e.literals[n-1]) {
			return start, -1
		}
		limit = secStart
		last = n - 1
		if matchStart < 0 && last == 0 {
			matchStart = secStart
		}
	}

	for i := first; i < last; i++ {
		sec := e.secs[i]
		if sec.IsGap() {
			if matchStart < 0 {
				matchStart = cursor
			}
			cursor += sec.Width()
			if cursor > limit {
				return start, -1
			}
			continue
		}
		litPos := e.searchSection(b, cursor+sec.LeadingUnknowns, limit, i)
		if litPos < 0 {
			return start, -1
		}
		if matchStart < 0 {
			matchStart = litPos - sec.LeadingUnknowns
		}
		cursor = litPos + sec.LiteralLen + sec.TrailingUnknowns
		if cursor > limit {
			return start, -1
		}
	}
	return e.result(matchStart, cursor, end)
}

// result converts a completed scan into the reported pair. Exact mode covers
// the whole range, so the match always ends at the range end; partial mode
// reports only the span the sections actually consumed.
func (e *Engine) result(matchStart, cursor, end int) (int, int) {
	if e.exact {
		return matchStart, end - matchStart
	}
	return matchStart, cursor - matchStart
}

// searchSection locates section i's literal at or after from, strictly below
// limit. It searches for the section's search substring, validates the
// literal bytes around each hit with unknown-aware comparison, and resumes
// one past a failed hit so repeated-substring false positives cannot skip a
// real occurrence. Returns the literal start position, or -1.
func (e *Engine) searchSection(b []byte, from, limit, i int) int {
	sec := e.secs[i]
	needle := e.needles[i]
	lit := e.literals[i]
	suffix := sec.SearchOffset + sec.SearchLen

	searchFrom := from + sec.SearchOffset
	for {
		if searchFrom+len(needle) > limit {
			return -1
		}
		q := simd.Memmem(b[searchFrom:limit], needle)
		if q < 0 {
			return -1
		}
		q += searchFrom
		litPos := q - sec.SearchOffset
		if litPos+sec.LiteralLen > limit {
			// Hits only move right from here, so the remainder of the
			// literal can never fit either.
			return -1
		}
		if e.matchHere(b, litPos, lit[:sec.SearchOffset]) &&
			e.matchHere(b, litPos+suffix, lit[suffix:]) {
			return litPos
		}
		searchFrom = q + 1
	}
}
