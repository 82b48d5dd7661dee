package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-spider/internal/engine"
	"github.com/vovakirdan/tui-spider/internal/platform/tui"
	"github.com/vovakirdan/tui-spider/internal/save"
	"github.com/vovakirdan/tui-spider/internal/storage"
)

var (
	flagSuits  int
	flagSeed   string
	flagNoAces bool
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Spider Solitaire",
	Long: `Start an interactive game.

Controls:
  Left/Right, h/l - Move between columns (1-9, 0 jump directly)
  Space/Enter     - Pick up the movable tail / drop it
  Up/Down, k/j    - Adjust how many cards are picked up
  d               - Deal a row from the stock
  u / r           - Undo / redo
  g               - Hint
  n               - New game
  q/Ctrl+C        - Quit (the game is saved and resumes next time)

The same suits, seed and ace setting always deal the same game, so a
seed can be shared to race a friend on an identical layout.

Examples:
  spider play
  spider play --suits 2
  spider play --suits 4 --seed peacock123
  spider play --no-aces
  spider play --resume`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSuits, "suits", 0, "Suit count: 1, 2 or 4 (default from config)")
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Deal seed (empty = random)")
	playCmd.Flags().BoolVar(&flagNoAces, "no-aces", false, "Play the 96-card no-aces variant")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved game if one exists")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	suits := flagSuits
	if suits == 0 {
		suits = cfg.Game.Suits
	}
	difficulty, err := engine.ParseDifficulty(fmt.Sprintf("%d", suits))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: suits must be 1, 2 or 4\n")
		os.Exit(1)
	}

	includeAces := cfg.Game.IncludeAces
	if flagNoAces {
		includeAces = false
	}

	// Not strictly needed for Bubble Tea, but fail early on non-terminals.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: spider play needs an interactive terminal")
		os.Exit(1)
	}

	var resume *engine.Snapshot
	if flagResume {
		snap, loadErr := save.Load(cfg.Paths.SaveFile)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read saved game: %v\n", loadErr)
		} else if snap == nil {
			fmt.Fprintln(os.Stderr, "No saved game found, starting fresh.")
		}
		resume = snap
	}

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:      cfg,
		Store:       store,
		Difficulty:  difficulty,
		Seed:        flagSeed,
		IncludeAces: includeAces,
		Resume:      resume,
		SavePath:    cfg.Paths.SaveFile,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
