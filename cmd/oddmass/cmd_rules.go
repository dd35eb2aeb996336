package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed rules.md
var rulesMarkdown string

// rulesCmd renders the puzzle rules to the terminal.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the puzzle rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			// Fall back to plain text if the renderer cannot be built.
			fmt.Fprint(cmd.OutOrStdout(), rulesMarkdown)
			return nil
		}
		out, err := renderer.Render(rulesMarkdown)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), rulesMarkdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
