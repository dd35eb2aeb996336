package scale

import (
	"testing"

	"oddmass/internal/mass"
)

func group(labels string) []mass.Label {
	var g []mass.Label
	for _, c := range labels {
		g = append(g, mass.Label(c))
	}
	return g
}

func TestWeigh(t *testing.T) {
	reg, err := mass.NewRegistryWithOdd('F')
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	tests := []struct {
		name  string
		left  string
		right string
		want  Outcome
	}{
		{name: "empty groups", left: "", right: "", want: Balanced},
		{name: "no odd on either side", left: "ABCD", right: "GHIJ", want: Balanced},
		{name: "odd on left", left: "EFGH", right: "ABCD", want: LeftHeavy},
		{name: "odd on right", left: "ABCD", right: "EFGH", want: RightHeavy},
		{name: "single mass each", left: "F", right: "A", want: LeftHeavy},
		{name: "unequal sizes no odd", left: "A", right: "BCD", want: Balanced},
		{name: "odd alone vs empty", left: "F", right: "", want: LeftHeavy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weigh(reg, group(tt.left), group(tt.right))
			if got != tt.want {
				t.Errorf("Weigh(%q, %q) = %s, want %s", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestWeigh_AllPlacements(t *testing.T) {
	// For every placement: odd inside the left group tips left, inside
	// the right tips right, outside both balances.
	for c := 'A'; c <= 'L'; c++ {
		reg, err := mass.NewRegistryWithOdd(mass.Label(c))
		if err != nil {
			t.Fatalf("registry %c: %v", c, err)
		}

		left, right := group("ABCD"), group("EFGH")
		want := Balanced
		switch {
		case c >= 'A' && c <= 'D':
			want = LeftHeavy
		case c >= 'E' && c <= 'H':
			want = RightHeavy
		}
		if got := Weigh(reg, left, right); got != want {
			t.Errorf("odd=%c: Weigh(ABCD, EFGH) = %s, want %s", c, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		first  Outcome
		second Outcome
		want   Relation
	}{
		{name: "second balanced wins over anything", first: LeftHeavy, second: Balanced, want: RelBalanced},
		{name: "both balanced", first: Balanced, second: Balanced, want: RelBalanced},
		{name: "right heavy then balanced", first: RightHeavy, second: Balanced, want: RelBalanced},
		{name: "left heavy repeated", first: LeftHeavy, second: LeftHeavy, want: Same},
		{name: "right heavy repeated", first: RightHeavy, second: RightHeavy, want: Same},
		{name: "left then right", first: LeftHeavy, second: RightHeavy, want: Opposite},
		{name: "right then left", first: RightHeavy, second: LeftHeavy, want: Opposite},
		{name: "balanced then left", first: Balanced, second: LeftHeavy, want: Opposite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.first, tt.second); got != tt.want {
				t.Errorf("Compare(%s, %s) = %s, want %s", tt.first, tt.second, got, tt.want)
			}
		})
	}
}
