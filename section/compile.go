package section

// Compile parses format into a section sequence using cfg's tokens and mode.
// It fails with ErrEmptyPattern when format is empty and ErrTokenConflict
// when the two tokens resolve to the same byte.
func Compile(format string, cfg Config) (*Seq, error) {
	cfg = cfg.withDefaults()
	if cfg.UnknownToken == cfg.AnythingToken {
		return nil, ErrTokenConflict
	}
	if format == "" {
		return nil, ErrEmptyPattern
	}

	s := &Seq{
		format:   format,
		unknown:  cfg.UnknownToken,
		anything: cfg.AnythingToken,
		exact:    cfg.Exact,
	}
	s.anchoredStart = cfg.Exact && format[0] != cfg.AnythingToken
	s.anchoredEnd = cfg.Exact && format[len(format)-1] != cfg.AnythingToken

	sections := splitSpans(format, cfg.AnythingToken, cfg.UnknownToken)
	sections = mergeGaps(sections, s.anchoredEnd)
	shiftLeading(sections)
	for i := range sections {
		chooseSearch(format, &sections[i], cfg.UnknownToken)
	}

	s.sections = sections
	for _, sec := range sections {
		s.minLen += sec.Width()
	}
	return s, nil
}

// splitSpans cuts format on the anything token and trims each non-empty span
// into a Section. Adjacent, leading and trailing anything tokens produce
// empty spans, which are dropped.
func splitSpans(format string, anything, unknown byte) []Section {
	var sections []Section
	start := 0
	for i := 0; i <= len(format); i++ {
		if i < len(format) && format[i] != anything {
			continue
		}
		if i > start {
			sections = append(sections, trimSpan(format, start, i, unknown))
		}
		start = i + 1
	}
	return sections
}

// trimSpan peels the unknown-token runs off both ends of format[start:end]
// into the section's counts. The left end is trimmed first, so a span of
// nothing but unknown tokens carries its whole width as LeadingUnknowns.
func trimSpan(format string, start, end int, unknown byte) Section {
	var sec Section
	for start < end && format[start] == unknown {
		start++
		sec.LeadingUnknowns++
	}
	for end > start && format[end-1] == unknown {
		end--
		sec.TrailingUnknowns++
	}
	sec.LiteralStart = start
	sec.LiteralLen = end - start
	return sec
}

// mergeGaps folds pure-gap sections into the previous section's trailing
// count, so "abc*??*456" compiles identically to "abc??*456". Two gaps
// resist merging: a first section, which has no previous section, and a
// final section under end anchoring, whose width the engine must verify at
// the range end rather than pinned against the previous literal.
func mergeGaps(sections []Section, anchoredEnd bool) []Section {
	out := sections[:0]
	for i, sec := range sections {
		switch {
		case !sec.IsGap() || len(out) == 0:
			out = append(out, sec)
		case anchoredEnd && i == len(sections)-1:
			sec.TrailingUnknowns += sec.LeadingUnknowns
			sec.LeadingUnknowns = 0
			out = append(out, sec)
		default:
			out[len(out)-1].TrailingUnknowns += sec.LeadingUnknowns + sec.TrailingUnknowns
		}
	}
	return out
}

// shiftLeading moves every non-first section's leading unknowns into the
// previous section's trailing count. After this pass the scan can treat each
// interior transition uniformly: skip the trailing unknowns, then search for
// the next literal.
func shiftLeading(sections []Section) {
	for i := 1; i < len(sections); i++ {
		if sections[i].LeadingUnknowns == 0 {
			continue
		}
		sections[i-1].TrailingUnknowns += sections[i].LeadingUnknowns
		sections[i].LeadingUnknowns = 0
	}
}
