package wildmatch

import (
	"fmt"

	"github.com/coregx/wildmatch/section"
)

// Sentinel errors returned (wrapped) by compilation.
var (
	// ErrEmptyPattern indicates an empty pattern was given to Compile.
	ErrEmptyPattern = section.ErrEmptyPattern

	// ErrTokenConflict indicates the unknown and anything tokens resolve to
	// the same byte.
	ErrTokenConflict = section.ErrTokenConflict
)

// InvalidPatternError reports a pattern rejected at compile time.
//
// It wraps one of the sentinel errors above, so callers can branch with
// errors.Is:
//
//	_, err := wildmatch.Compile("", wildmatch.Partial)
//	if errors.Is(err, wildmatch.ErrEmptyPattern) {
//	    // ...
//	}
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid wildcard pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// RangeError reports a caller-supplied range that falls outside the subject.
type RangeError struct {
	Start      int
	Length     int
	SubjectLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d:%d] out of bounds for subject length %d",
		e.Start, e.Start+e.Length, e.SubjectLen)
}

// checkRange validates the range [start, start+length) against a subject of
// n bytes. start == n with length 0 is a valid empty range.
func checkRange(start, length, n int) error {
	if start < 0 || length < 0 || start+length > n {
		return &RangeError{Start: start, Length: length, SubjectLen: n}
	}
	return nil
}
