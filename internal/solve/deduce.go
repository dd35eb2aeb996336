package solve

import (
	"fmt"
	"io"

	"oddmass/internal/mass"
	"oddmass/internal/scale"
)

// DeduceResult is the outcome of an iterative deduction session.
type DeduceResult struct {
	Verdict   Verdict
	Guess     mass.Label // zero when the session ended without isolating a mass
	Answer    mass.Label
	Lucky     bool
	Confirmed int
	Steps     []Step
}

// Deduce runs the iterative deduction loop. Each round the user picks an
// even group size and how many group members to draw from the
// confirmed-normal set; the chosen group goes on the scale as two halves
// and the result tells whether the odd mass is inside it. A balanced
// result confirms the whole group normal, an unbalanced one confirms
// everything left out. The session ends when eleven masses are confirmed
// (the twelfth is the odd one by elimination), when the size-two shortcut
// isolates the odd mass directly, or when the three weighings run out.
//
// Out-of-range numbers re-prompt indefinitely; a line that does not parse
// as a number at all aborts the run with an error.
func Deduce(reg *mass.Registry, in io.Reader, out io.Writer) (DeduceResult, error) {
	r := newLineReader(in)
	res := DeduceResult{Answer: reg.OddLabel()}

	for remaining := MaxWeighings; remaining > 0; remaining-- {
		fmt.Fprintf(out, "\n-------------------\n\n")
		fmt.Fprintf(out, "Weighings left: %d\n", remaining)
		fmt.Fprintf(out, "Confirmed normal so far: %q\n", mass.Names(reg.ConfirmedLabels()))

		size, err := promptRange(r, out,
			"How many masses go on the scale? (even, 1-12)", 1, mass.Count, evenOnly)
		if err != nil {
			return res, err
		}

		maxConfirmed := reg.ConfirmedCount()
		if maxConfirmed > size {
			maxConfirmed = size
		}
		fromConfirmed, err := promptRange(r, out,
			fmt.Sprintf("How many of those from the confirmed-normal set? (0-%d)", maxConfirmed),
			0, maxConfirmed, nil)
		if err != nil {
			return res, err
		}

		weighed, leftOut := Partition(reg, size, fromConfirmed)
		confirmedInGroup := 0
		for _, label := range weighed {
			if reg.Confirmed(label) {
				confirmedInGroup++
			}
		}

		outcome := scale.Weigh(reg, weighed, nil)
		res.Steps = append(res.Steps, Step{Left: weighed, Outcome: outcome})
		fmt.Fprintf(out, "Weighing %q as two halves...\n", mass.Names(weighed))

		if outcome == scale.Balanced {
			fmt.Fprintln(out, "The halves balance: no odd mass in this group.")
			for _, label := range weighed {
				reg.Confirm(label)
			}
		} else {
			fmt.Fprintln(out, "The halves do not balance: the odd mass is in this group.")
			if len(weighed) == 2 && confirmedInGroup == 1 {
				// One of the pair is already known normal, so the
				// scale just pointed at the other one.
				for _, label := range weighed {
					if !reg.Confirmed(label) {
						res.Guess = label
						break
					}
				}
				res.Lucky = reg.ConfirmedCount() < mass.Count-1
				break
			}
			for _, label := range leftOut {
				reg.Confirm(label)
			}
		}

		if reg.ConfirmedCount() >= mass.Count-1 {
			res.Guess = reg.UnconfirmedLabels()[0]
			break
		}
	}

	res.Confirmed = reg.ConfirmedCount()

	fmt.Fprintf(out, "\n-------------------\n\n")
	if res.Guess == 0 {
		res.Verdict = Lose
		fmt.Fprintln(out, "Out of weighings without isolating the odd mass.")
		fmt.Fprintf(out, "The odd mass was: %s\n", res.Answer)
		return res, nil
	}

	if res.Lucky {
		fmt.Fprintf(out, "Lucky finish: only %d masses were confirmed normal, but the scale singled one out.\n", res.Confirmed)
	}
	if res.Guess == res.Answer {
		res.Verdict = Win
		fmt.Fprintf(out, "The odd mass is: %s\n", res.Guess)
	} else {
		res.Verdict = Lose
		fmt.Fprintf(out, "Deduced %s, but the odd mass was: %s\n", res.Guess, res.Answer)
	}
	return res, nil
}

// Partition splits the registry into a weighed group of the requested
// size and a left-out group holding everything else. The weighed group
// prefers confirmed-normal masses up to fromConfirmed, then fills with
// unconfirmed ones (falling back to further confirmed masses if those run
// out). The registry itself is never reordered; both groups come back in
// registry order.
func Partition(reg *mass.Registry, size, fromConfirmed int) (weighed, leftOut []mass.Label) {
	confirmed := reg.ConfirmedLabels()
	unconfirmed := reg.UnconfirmedLabels()

	take := fromConfirmed
	if take > len(confirmed) {
		take = len(confirmed)
	}
	picked := make(map[mass.Label]bool, size)
	for _, label := range confirmed[:take] {
		picked[label] = true
	}
	for _, label := range unconfirmed {
		if len(picked) >= size {
			break
		}
		picked[label] = true
	}
	for _, label := range confirmed[take:] {
		if len(picked) >= size {
			break
		}
		picked[label] = true
	}

	for _, label := range reg.Labels() {
		if picked[label] {
			weighed = append(weighed, label)
		} else {
			leftOut = append(leftOut, label)
		}
	}
	return weighed, leftOut
}

// evenOnly rejects odd group sizes during re-prompting.
func evenOnly(n int) bool { return n%2 == 0 }

// promptRange prints a prompt and reads an integer, re-prompting while
// the value is outside [lo, hi] or fails the extra check. Only range
// violations re-prompt; unparseable input is fatal.
func promptRange(r *lineReader, out io.Writer, prompt string, lo, hi int, ok func(int) bool) (int, error) {
	fmt.Fprintln(out, prompt)
	n, err := r.intLine()
	if err != nil {
		return 0, err
	}
	for n < lo || n > hi || (ok != nil && !ok(n)) {
		fmt.Fprintf(out, "Out of range, try again. %s\n", prompt)
		n, err = r.intLine()
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}
