package main

import (
	"os"

	"github.com/spf13/cobra"

	"oddmass/internal/mass"
	"oddmass/internal/session"
	"oddmass/internal/solve"
)

// deduceCmd runs the iterative deduction variant: pick group sizes,
// watch the scale, and let elimination do the work.
var deduceCmd = &cobra.Command{
	Use:   "deduce",
	Short: "Solve by iteratively confirming masses as normal",
	Long: `Runs the iterative deduction loop. Each round you choose an even
group size and how many already-confirmed masses to include; the scale
then tells whether the odd mass is inside the chosen group. Balanced
confirms the whole group normal, unbalanced confirms everything left
out. Isolate the odd mass before the three weighings run out.

Out-of-range numbers re-prompt; input that is not a number aborts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := mass.NewRegistry(newRNG())
		rec := session.NewRecord(session.ModeDeduce)

		res, err := solve.Deduce(reg, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		guess := ""
		if res.Guess != 0 {
			guess = res.Guess.String()
		}
		rec.Steps = res.Steps
		rec.Finish(guess, res.Answer, res.Verdict == solve.Win)
		logRecord(rec)
		return nil
	},
}
