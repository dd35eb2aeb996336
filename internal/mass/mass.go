// Package mass models the twelve puzzle masses: their fixed identities,
// the hidden ground truth of which one is odd, and the mutable deduction
// status accumulated while solving. Weighing groups reference masses by
// label only; status changes always go through the Registry so no caller
// ever holds a direct handle into its backing storage.
package mass

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// Count is the fixed number of masses in a puzzle instance.
const Count = 12

// Label identifies a single mass, one of 'A' through 'L'.
type Label rune

// String returns the label as a one-character string.
func (l Label) String() string { return string(rune(l)) }

// Class is the ground-truth weight class of a mass. It is assigned once
// when the registry is created and never changes afterwards.
type Class int

const (
	// ClassNormal marks one of the eleven identical masses.
	ClassNormal Class = iota
	// ClassOdd marks the single mass whose weight differs.
	ClassOdd
)

// Status is the deduction state of a mass. It starts at StatusUnknown and
// may only move forward to StatusConfirmedNormal; it never reverts.
type Status int

const (
	StatusUnknown Status = iota
	StatusConfirmedNormal
)

// Mass is a single puzzle mass. Values returned by the Registry are
// copies; mutating one has no effect on the registry.
type Mass struct {
	Label  Label
	Class  Class
	Status Status
}

// Registry holds the twelve masses for one solve session in a stable
// order (A through L). Exactly one mass has ClassOdd. The registry is the
// only place status transitions happen.
type Registry struct {
	masses []Mass
	index  map[Label]int
}

// NewRegistry creates a registry of twelve masses labeled A-L with the
// odd mass placed by the provided random source. Determinism follows the
// source: the same seeded *rand.Rand always yields the same placement.
func NewRegistry(rng *rand.Rand) *Registry {
	return newRegistry(Label('A' + rune(rng.Intn(Count))))
}

// NewRegistryWithOdd creates a registry with the odd mass at a fixed
// label. It returns an error if the label is not one of A-L.
func NewRegistryWithOdd(odd Label) (*Registry, error) {
	if odd < 'A' || odd >= 'A'+Count {
		return nil, fmt.Errorf("mass: label %q outside A-%c", odd.String(), 'A'+Count-1)
	}
	return newRegistry(odd), nil
}

func newRegistry(odd Label) *Registry {
	r := &Registry{
		masses: make([]Mass, 0, Count),
		index:  make(map[Label]int, Count),
	}
	for c := 'A'; c < 'A'+Count; c++ {
		label := Label(c)
		class := ClassNormal
		if label == odd {
			class = ClassOdd
		}
		r.index[label] = len(r.masses)
		r.masses = append(r.masses, Mass{Label: label, Class: class})
	}
	return r
}

// Labels returns all twelve labels in registry order.
func (r *Registry) Labels() []Label {
	labels := make([]Label, len(r.masses))
	for i, m := range r.masses {
		labels[i] = m.Label
	}
	return labels
}

// Get returns a copy of the mass with the given label.
func (r *Registry) Get(label Label) (Mass, bool) {
	i, ok := r.index[label]
	if !ok {
		return Mass{}, false
	}
	return r.masses[i], true
}

// Class returns the ground-truth class of the given label. Unknown labels
// report ClassNormal; callers that care should check membership with Get.
func (r *Registry) Class(label Label) Class {
	i, ok := r.index[label]
	if !ok {
		return ClassNormal
	}
	return r.masses[i].Class
}

// OddLabel returns the ground-truth odd mass.
func (r *Registry) OddLabel() Label {
	for _, m := range r.masses {
		if m.Class == ClassOdd {
			return m.Label
		}
	}
	// Construction guarantees one odd mass.
	panic("mass: registry has no odd mass")
}

// Confirm marks a label as confirmed normal. Confirming an already
// confirmed or unknown label is a no-op, so repeated confirmations never
// grow the confirmed set.
func (r *Registry) Confirm(label Label) {
	if i, ok := r.index[label]; ok {
		r.masses[i].Status = StatusConfirmedNormal
	}
}

// Confirmed reports whether the label has been marked confirmed normal.
func (r *Registry) Confirmed(label Label) bool {
	i, ok := r.index[label]
	return ok && r.masses[i].Status == StatusConfirmedNormal
}

// ConfirmedCount returns how many masses are confirmed normal.
func (r *Registry) ConfirmedCount() int {
	n := 0
	for _, m := range r.masses {
		if m.Status == StatusConfirmedNormal {
			n++
		}
	}
	return n
}

// ConfirmedLabels returns the confirmed-normal labels in registry order.
func (r *Registry) ConfirmedLabels() []Label {
	var labels []Label
	for _, m := range r.masses {
		if m.Status == StatusConfirmedNormal {
			labels = append(labels, m.Label)
		}
	}
	return labels
}

// UnconfirmedLabels returns the not-yet-confirmed labels in registry order.
func (r *Registry) UnconfirmedLabels() []Label {
	var labels []Label
	for _, m := range r.masses {
		if m.Status != StatusConfirmedNormal {
			labels = append(labels, m.Label)
		}
	}
	return labels
}

// ParseSelection converts a free-form input string into a group of labels.
// Letters are folded to upper case, non-letter characters and labels not
// present in the registry are dropped silently, and duplicates are kept
// only once. Input order is preserved.
func (r *Registry) ParseSelection(input string) []Label {
	var group []Label
	seen := make(map[Label]bool, Count)
	for _, c := range input {
		if !unicode.IsLetter(c) {
			continue
		}
		label := Label(unicode.ToUpper(c))
		if _, ok := r.index[label]; !ok || seen[label] {
			continue
		}
		seen[label] = true
		group = append(group, label)
	}
	return group
}

// Names joins a group of labels into a compact display string like "ABCD".
func Names(group []Label) string {
	var b strings.Builder
	b.Grow(len(group))
	for _, l := range group {
		b.WriteRune(rune(l))
	}
	return b.String()
}
