package main

import (
	"os"

	"github.com/spf13/cobra"

	"oddmass/internal/mass"
	"oddmass/internal/session"
	"oddmass/internal/solve"
)

// manualCmd runs the plain line-oriented manual solve loop: three
// weighings with groups typed as label strings, then a final guess.
var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Solve the puzzle by hand with line-oriented prompts",
	Long: `Runs the manual solve loop against standard input and output.
Each of the three weighings asks for the left and right groups as a
string of mass labels (A-L, case-insensitive, other characters are
ignored). After the third weighing you name the odd mass.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := mass.NewRegistry(newRNG())
		rec := session.NewRecord(session.ModeManual)

		res := solve.Manual(reg, os.Stdin, os.Stdout)

		rec.Steps = res.Steps
		rec.Finish(res.Guess, res.Answer, res.Verdict == solve.Win)
		logRecord(rec)
		return nil
	},
}
