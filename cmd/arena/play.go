package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shrink-arena/internal/config"
	"github.com/vovakirdan/shrink-arena/internal/core"
	"github.com/vovakirdan/shrink-arena/internal/games/arena"
	"github.com/vovakirdan/shrink-arena/internal/platform/tui"
	"github.com/vovakirdan/shrink-arena/internal/registry"
	"github.com/vovakirdan/shrink-arena/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows  - Move (keys latch briefly, terminals never report release)
  Mouse        - Aim
  Space/Click  - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Gentler shrink, extra starting ammo
  normal - As configured, enemies speed up with score
  hard   - Faster enemies, harsher shrink
  fixed  - No progression, enemies keep their configured speed

Examples:
  arena play arena
  arena play arena --difficulty easy
  arena play inventorium --difficulty fixed
  arena play arena --config ./my-arena.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates --config and --difficulty for gameID and hands
// them to the arena package. Config problems surface here rather than as a
// silent fallback once the alt-screen is up.
func applyGameFlags(gameID string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if _, err := config.Load(gameID, flagConfig); err != nil {
		return err
	}

	arena.SetConfigPath(flagConfig)
	arena.SetDifficultyPreset(preset)
	return nil
}

// terminalConfig builds a RuntimeConfig sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arena list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
