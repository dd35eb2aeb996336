package solve

import (
	"errors"

	"oddmass/internal/mass"
	"oddmass/internal/scale"
)

// ErrInconsistentOutcomes signals an outcome combination the fixed
// weighing plan cannot produce for any of the twelve placements. Seeing
// it means the evaluator or the plan itself is broken, not the user.
var ErrInconsistentOutcomes = errors.New("solve: weighing outcomes are mutually inconsistent")

// AutoResult is the outcome of one auto-solve run.
type AutoResult struct {
	Guess mass.Label
	Steps []Step
}

// Auto runs the fixed three-weighing decision tree against a registry and
// returns the label it deduces for the odd mass. The plan:
//
//	1. ABCD vs EFGH
//	2. balanced branch:   IJ vs KA, then JK vs AB
//	   unbalanced branch: ABE vs CDF, then ED vs FB (or G vs I)
//
// Directional relationships between weighings are composed with
// scale.Compare rather than re-deriving raw heavy/light state. For a
// given placement the same weighings always run and the same label comes
// out; the only randomness in a session is the initial placement.
func Auto(reg *mass.Registry) (AutoResult, error) {
	var res AutoResult
	weigh := func(left, right string) scale.Outcome {
		l := reg.ParseSelection(left)
		r := reg.ParseSelection(right)
		outcome := scale.Weigh(reg, l, r)
		res.Steps = append(res.Steps, Step{Left: l, Right: r, Outcome: outcome})
		return outcome
	}

	first := weigh("ABCD", "EFGH")

	if first == scale.Balanced {
		// Odd mass is among IJKL; A and B are proven normal references.
		second := weigh("IJ", "KA")
		if second == scale.Balanced {
			res.Guess = 'L'
			return res, nil
		}
		third := weigh("JK", "AB")
		// The odd mass reads heavy on this scale, so a repeated
		// direction means J sat on the left both times and a reversal
		// means K moved sides.
		switch scale.Compare(second, third) {
		case scale.RelBalanced:
			res.Guess = 'I'
		case scale.Same:
			res.Guess = 'J'
		case scale.Opposite:
			res.Guess = 'K'
		}
		return res, nil
	}

	// Odd mass is among ABCDEFGH.
	second := weigh("ABE", "CDF")
	if second == scale.Balanced {
		// Only G and H went unweighed in step two; I is proven normal.
		third := weigh("G", "I")
		if third == scale.Balanced {
			res.Guess = 'H'
		} else {
			res.Guess = 'G'
		}
		return res, nil
	}

	third := weigh("ED", "FB")
	rel12 := scale.Compare(first, second)
	rel23 := scale.Compare(second, third)
	switch {
	case rel12 == scale.Same && rel23 == scale.RelBalanced:
		res.Guess = 'A'
	case rel12 == scale.Same && rel23 == scale.Same:
		res.Guess = 'F'
	case rel12 == scale.Same && rel23 == scale.Opposite:
		res.Guess = 'B'
	case rel12 == scale.Opposite && rel23 == scale.RelBalanced:
		res.Guess = 'C'
	case rel12 == scale.Opposite && rel23 == scale.Same:
		res.Guess = 'E'
	case rel12 == scale.Opposite && rel23 == scale.Opposite:
		res.Guess = 'D'
	default:
		// rel12 can only read RelBalanced when weighing two balanced,
		// and that branch was taken above.
		return res, ErrInconsistentOutcomes
	}
	return res, nil
}
