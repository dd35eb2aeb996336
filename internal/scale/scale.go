// Package scale implements the balance comparison rule and the relation
// between two historical outcomes. Both operations are pure functions
// over label groups and a mass registry.
package scale

import "oddmass/internal/mass"

// Outcome is the result of a single weighing.
type Outcome int

const (
	Balanced Outcome = iota
	LeftHeavy
	RightHeavy
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case LeftHeavy:
		return "LeftHeavy"
	case RightHeavy:
		return "RightHeavy"
	default:
		return "Balanced"
	}
}

// Weigh compares two groups of masses and reports which side is heavier.
// Each odd-class mass contributes one unit of weight, normal masses
// contribute none. The groups are expected to be disjoint; the evaluator
// does not enforce that, nor equal group sizes. Two empty groups weigh
// Balanced.
func Weigh(reg *mass.Registry, left, right []mass.Label) Outcome {
	l := units(reg, left)
	r := units(reg, right)
	switch {
	case l > r:
		return LeftHeavy
	case l < r:
		return RightHeavy
	default:
		return Balanced
	}
}

func units(reg *mass.Registry, group []mass.Label) int {
	n := 0
	for _, label := range group {
		if reg.Class(label) == mass.ClassOdd {
			n++
		}
	}
	return n
}

// Relation classifies how a second weighing outcome relates to a first.
type Relation int

const (
	// RelBalanced means the second weighing balanced, regardless of the first.
	RelBalanced Relation = iota
	// Same means both weighings tipped to the same side.
	Same
	// Opposite means the weighings tipped to different sides.
	Opposite
)

// String returns a human-readable relation name.
func (r Relation) String() string {
	switch r {
	case Same:
		return "Same"
	case Opposite:
		return "Opposite"
	default:
		return "Balanced"
	}
}

// Compare relates two weighing outcomes. A balanced second outcome always
// yields RelBalanced; otherwise equal outcomes are Same and differing
// ones Opposite.
func Compare(first, second Outcome) Relation {
	if second == Balanced {
		return RelBalanced
	}
	if first == second {
		return Same
	}
	return Opposite
}
