package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oddmass/internal/mass"
	"oddmass/internal/session"
	"oddmass/internal/solve"
)

var (
	autoAttempts int
	autoSteps    bool
)

// autoCmd runs the fixed three-weighing strategy, optionally many times
// in a row, and prints the win/loss record.
var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let the fixed three-weighing strategy solve the puzzle",
	Long: `Runs the built-in decision tree against one or more fresh puzzles.
The strategy always weighs ABCD vs EFGH first and narrows down from
there; for any placement it needs at most three weighings. Use
--attempts to run a batch and --steps to print every weighing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		attempts := cfg.Attempts
		if cmd.Flags().Changed("attempts") {
			attempts = autoAttempts
		}
		if attempts < 1 {
			return fmt.Errorf("attempts must be at least 1, got %d", attempts)
		}
		showSteps := autoSteps || cfg.ShowSteps

		rng := newRNG()
		records := make([]*session.Record, 0, attempts)
		out := cmd.OutOrStdout()

		for i := 0; i < attempts; i++ {
			reg := mass.NewRegistry(rng)
			rec := session.NewRecord(session.ModeAuto)

			res, err := solve.Auto(reg)
			if err != nil {
				// Impossible outcome combination: a defect, not user error.
				return err
			}

			won := res.Guess == reg.OddLabel()
			rec.Steps = res.Steps
			rec.Finish(res.Guess.String(), reg.OddLabel(), won)
			records = append(records, rec)

			if showSteps {
				for n, step := range res.Steps {
					fmt.Fprintf(out, "%d. %s vs %s: %s\n",
						n+1, mass.Names(step.Left), mass.Names(step.Right), step.Outcome)
				}
			}
			fmt.Fprintf(out, "Auto-solve result: %s (odd mass was %s)\n",
				res.Guess, reg.OddLabel())
			logRecord(rec)
		}

		sum := session.Summarize(records)
		fmt.Fprintf(out, "\nResults: %s\n", session.Trace(records))
		fmt.Fprintf(out, "%d attempts: %d wins, %d losses\n",
			sum.Attempts, sum.Wins, sum.Losses)
		logger.Debug("auto batch finished",
			zap.Int("attempts", sum.Attempts),
			zap.Int("wins", sum.Wins),
			zap.Int("losses", sum.Losses),
		)
		return nil
	},
}

func init() {
	autoCmd.Flags().IntVar(&autoAttempts, "attempts", 1, "how many puzzles to solve")
	autoCmd.Flags().BoolVar(&autoSteps, "steps", false, "print every weighing")
}
