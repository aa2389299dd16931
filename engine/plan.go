package engine

import (
	"fmt"

	"github.com/coregx/wildmatch/section"
)

// Plan classifies how the engine traverses a subject range, fixed at build
// time from the compiled pattern.
type Plan int

const (
	// PlanMatchAll is selected for patterns with no sections at all (nothing
	// but anything tokens). Every range matches exactly once, with width
	// zero.
	PlanMatchAll Plan = iota

	// PlanWholeRange is selected in exact mode: a single attempt must cover
	// the whole range, so multi-match yields at most one result.
	PlanWholeRange

	// PlanScan is selected in partial mode: successive non-overlapping
	// attempts sweep the range left to right.
	PlanScan
)

// String returns a human-readable plan name.
func (p Plan) String() string {
	switch p {
	case PlanMatchAll:
		return "MatchAll"
	case PlanWholeRange:
		return "WholeRange"
	case PlanScan:
		return "Scan"
	default:
		return fmt.Sprintf("Plan(%d)", int(p))
	}
}

func selectPlan(seq *section.Seq) Plan {
	switch {
	case seq.IsEmpty():
		return PlanMatchAll
	case seq.Exact():
		return PlanWholeRange
	default:
		return PlanScan
	}
}
