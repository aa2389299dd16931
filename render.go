package wildmatch

import (
	"strconv"
	"strings"
)

// Dialect selects the output flavor of ToRegex.
type Dialect int

const (
	// Standard emits a plain regular expression.
	Standard Dialect = iota

	// SQLQuoted emits the regular expression wrapped in single quotes, with
	// embedded single quotes doubled, ready to paste into a SQL statement.
	SQLQuoted
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case Standard:
		return "Standard"
	case SQLQuoted:
		return "SQLQuoted"
	default:
		return "Dialect(" + strconv.Itoa(int(d)) + ")"
	}
}

// Characters escaped when a pattern literal is rendered into a regular
// expression.
const regexSpecial = `\.+*?()|[]{}^$`

func isRegexSpecial(c byte) bool {
	for i := 0; i < len(regexSpecial); i++ {
		if c == regexSpecial[i] {
			return true
		}
	}
	return false
}

// ToRegex renders the compiled pattern as an equivalent regular expression:
// '^' appears iff the match is anchored at the range start, '$' iff anchored
// at the end, each unknown token becomes '.', each anything token becomes
// ".*", and literal metacharacters are backslash-escaped. A pattern of
// nothing but anything tokens renders as ".*" with no anchors, whatever the
// mode. The output is deterministic for a given compiled pattern.
//
// Example:
//
//	p := wildmatch.MustCompile("20??-01*", wildmatch.ExactMatch)
//	p.ToRegex(wildmatch.Standard) // "^20..-01.*"
func (p *Pattern) ToRegex(d Dialect) string {
	var b strings.Builder
	if d == SQLQuoted {
		b.WriteByte('\'')
	}
	p.writeRegex(&b, d)
	if d == SQLQuoted {
		b.WriteByte('\'')
	}
	return b.String()
}

func (p *Pattern) writeRegex(b *strings.Builder, d Dialect) {
	seq := p.seq
	if seq.IsEmpty() {
		b.WriteString(".*")
		return
	}
	if seq.AnchoredStart() {
		b.WriteByte('^')
	}
	format := seq.Format()
	if format[0] == seq.Anything() {
		b.WriteString(".*")
	}
	for i := 0; i < seq.Len(); i++ {
		if i > 0 {
			b.WriteString(".*")
		}
		sec := seq.Get(i)
		for j := 0; j < sec.LeadingUnknowns; j++ {
			b.WriteByte('.')
		}
		lit := seq.Literal(i)
		for j := 0; j < len(lit); j++ {
			switch c := lit[j]; {
			case c == seq.Unknown():
				b.WriteByte('.')
			case d == SQLQuoted && c == '\'':
				b.WriteString("''")
			case isRegexSpecial(c):
				b.WriteByte('\\')
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}
		}
		for j := 0; j < sec.TrailingUnknowns; j++ {
			b.WriteByte('.')
		}
	}
	if format[len(format)-1] == seq.Anything() {
		b.WriteString(".*")
	}
	if seq.AnchoredEnd() {
		b.WriteByte('$')
	}
}
