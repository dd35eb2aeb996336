package solve

import (
	"fmt"
	"io"
	"strings"

	"oddmass/internal/mass"
	"oddmass/internal/scale"
)

// ManualResult is the outcome of a manual solve session.
type ManualResult struct {
	Verdict Verdict
	Guess   string
	Answer  mass.Label
	Steps   []Step
}

// Manual runs the interactive manual solve loop: three weighings with
// label groups read from in, then a final guess. The guess is compared
// case-insensitively against the ground truth. Characters that do not
// name a mass are dropped from group selections without complaint.
func Manual(reg *mass.Registry, in io.Reader, out io.Writer) ManualResult {
	r := newLineReader(in)
	res := ManualResult{Answer: reg.OddLabel()}

	for remaining := MaxWeighings; remaining > 0; remaining-- {
		fmt.Fprintf(out, "\n-------------------\n\n")
		fmt.Fprintf(out, "Weighings left: %d\n", remaining)

		fmt.Fprintln(out, "Which masses go on the left side of the scale?")
		left := reg.ParseSelection(r.line())
		fmt.Fprintf(out, "Left side: %q\n", mass.Names(left))

		fmt.Fprintln(out, "Which masses go on the right side of the scale?")
		right := reg.ParseSelection(r.line())
		fmt.Fprintf(out, "Right side: %q\n", mass.Names(right))

		outcome := scale.Weigh(reg, left, right)
		res.Steps = append(res.Steps, Step{Left: left, Right: right, Outcome: outcome})
		fmt.Fprintf(out, "The balance reads: %s\n", outcome)
	}

	fmt.Fprintf(out, "\n-------------------\n\n")
	fmt.Fprintln(out, "No weighings left.")
	fmt.Fprintln(out, "Which mass is the odd one?")

	res.Guess = strings.ToUpper(strings.TrimSpace(r.line()))
	if res.Guess == res.Answer.String() {
		res.Verdict = Win
		fmt.Fprintln(out, "You found the odd mass!")
	} else {
		res.Verdict = Lose
		fmt.Fprintln(out, "That is not the odd mass.")
	}
	fmt.Fprintf(out, "The odd mass was: %s\n", res.Answer)
	return res
}
