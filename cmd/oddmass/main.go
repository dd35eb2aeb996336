// Package main is the oddmass entrypoint: a terminal simulator for the
// classic "12 masses, one odd, 3 weighings" balance puzzle.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"oddmass/cmd/oddmass/game"
	"oddmass/cmd/oddmass/ui"
	"oddmass/internal/config"
	"oddmass/internal/session"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	seed       int64
	configPath string

	// Loaded per run
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Running it with no subcommand
// opens the interactive play session.
var rootCmd = &cobra.Command{
	Use:   "oddmass",
	Short: "oddmass - the 12 masses balance puzzle",
	Long: `oddmass simulates the classic balance-scale puzzle: twelve masses,
eleven identical and one odd, and only three uses of the scale to find
the odd one.

Run without arguments to play interactively. Use 'manual' or 'deduce'
for the plain line-oriented variants, or 'auto' to watch a fixed
three-weighing strategy solve the puzzle on its own.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		zcfg := zap.NewProductionConfig()
		if verbose || cfg.Logging.Level == "debug" {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

// playCmd opens the interactive TUI explicitly.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle in the interactive terminal interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the oddmass version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("oddmass %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "odd-mass placement seed (0 = OS entropy)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.oddmass/config.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(manualCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(deduceCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newRNG builds the session random source from the effective seed.
func newRNG() *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// runPlay starts the bubbletea play session.
func runPlay() error {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	m := game.New(cfg.Seed, styles)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("play session failed: %w", err)
	}

	if fm, ok := final.(game.Model); ok {
		logRecord(fm.Record())
	}
	return nil
}

// logRecord emits a debug line for a finished (or abandoned) session.
func logRecord(rec *session.Record) {
	if rec == nil {
		return
	}
	logger.Debug("session finished",
		zap.String("id", rec.ID),
		zap.String("mode", string(rec.Mode)),
		zap.Int("weighings", len(rec.Steps)),
		zap.String("guess", rec.Guess),
		zap.Bool("won", rec.Won),
		zap.Duration("duration", rec.Duration),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
