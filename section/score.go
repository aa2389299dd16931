package section

// chooseSearch picks a section's search substring: the unknown-free run of
// the literal span judged least prone to false-positive hits during the
// engine's substring scan. The lowest penalty wins, longer runs break ties,
// and on a full tie the leftmost run is kept.
func chooseSearch(format string, sec *Section, unknown byte) {
	if sec.LiteralLen == 0 {
		return
	}
	lit := format[sec.LiteralStart : sec.LiteralStart+sec.LiteralLen]
	bestOff, bestLen, bestPenalty := -1, 0, 0
	runStart := 0
	for i := 0; i <= len(lit); i++ {
		if i < len(lit) && lit[i] != unknown {
			continue
		}
		if i > runStart {
			p := searchPenalty(lit[runStart:i])
			if bestOff < 0 || p < bestPenalty || (p == bestPenalty && i-runStart > bestLen) {
				bestOff, bestLen, bestPenalty = runStart, i-runStart, p
			}
		}
		runStart = i + 1
	}
	sec.SearchOffset = bestOff
	sec.SearchLen = bestLen
}

// searchPenalty scores one candidate run. Every character equal to its
// predecessor and every character already seen in the run add a point each,
// so "0000" scores far worse than "2024". Repetitive needles produce cheap
// false positives that force the engine to rescan.
func searchPenalty(run string) int {
	var seen [256]bool
	p := 0
	for i := 0; i < len(run); i++ {
		c := run[i]
		if i > 0 && c == run[i-1] {
			p++
		}
		if seen[c] {
			p++
		}
		seen[c] = true
	}
	return p
}
