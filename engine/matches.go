package engine

import "iter"

// Matches returns an iterator over successive (start, length) pairs in
// b[start:start+length]. The sequence is finite and restartable: ranging
// over it again rescans from the range start.
//
// Patterns with no sections yield exactly one pair, (start, 0). Exact mode
// yields at most one pair, since a single attempt must cover the whole
// range. Partial mode yields every non-overlapping match left to right, each
// attempt resuming where the previous match ended.
func (e *Engine) Matches(b []byte, start, length int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if e.plan != PlanScan {
			if s, l := e.Find(b, start, length); l >= 0 {
				yield(s, l)
			}
			return
		}
		end := start + length
		pos := start
		for pos <= end {
			s, l := e.Find(b, pos, end-pos)
			if l < 0 || !yield(s, l) {
				return
			}
			// Sections are never empty under PlanScan, so l >= 1 and the
			// cursor always advances.
			pos = s + l
		}
	}
}

// FindAll collects up to n matches from Matches. If n < 0 it collects all of
// them; n == 0 returns nil. Each element is a two-element {start, length}
// slice.
func (e *Engine) FindAll(b []byte, start, length, n int) [][]int {
	if n == 0 {
		return nil
	}
	var out [][]int
	for s, l := range e.Matches(b, start, length) {
		out = append(out, []int{s, l})
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Count returns the number of matches Matches would yield. If n > 0 it
// counts at most n matches; n <= 0 counts them all.
func (e *Engine) Count(b []byte, start, length, n int) int {
	count := 0
	for range e.Matches(b, start, length) {
		count++
		if n > 0 && count == n {
			break
		}
	}
	return count
}
