package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spider/internal/engine"
)

var (
	flagDealSuits  int
	flagDealSeed   string
	flagDealNoAces bool
	flagDealJSON   bool
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a deterministic deal without playing",
	Long: `Deal a game for the given seed and print the layout. Useful for
inspecting what a shared seed produces, or for piping the initial
snapshot to other tools with --json.

The inventory check runs on every deal; a clean deck prints "inventory
ok" and any defect fails the command.

Examples:
  spider deal --seed peacock123
  spider deal --suits 4 --seed peacock123
  spider deal --seed peacock123 --json > deal.json`,
	Args: cobra.NoArgs,
	Run:  runDeal,
}

func init() {
	dealCmd.Flags().IntVar(&flagDealSuits, "suits", 0, "Suit count: 1, 2 or 4 (default from config)")
	dealCmd.Flags().StringVar(&flagDealSeed, "seed", "", "Deal seed (empty = random)")
	dealCmd.Flags().BoolVar(&flagDealNoAces, "no-aces", false, "Deal the 96-card no-aces variant")
	dealCmd.Flags().BoolVar(&flagDealJSON, "json", false, "Print the initial snapshot as JSON")
}

func runDeal(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	suits := flagDealSuits
	if suits == 0 {
		suits = cfg.Game.Suits
	}
	difficulty, err := engine.ParseDifficulty(fmt.Sprintf("%d", suits))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: suits must be 1, 2 or 4\n")
		os.Exit(1)
	}

	includeAces := cfg.Game.IncludeAces
	if flagDealNoAces {
		includeAces = false
	}

	game := engine.New(nil, engine.Scoring{
		StartingScore:   cfg.Scoring.StartingScore,
		MovePenalty:     cfg.Scoring.MovePenalty,
		CompletionBonus: cfg.Scoring.CompletionBonus,
	})
	game.NewGame(difficulty, flagDealSeed, includeAces)

	report := game.VerifyInventory()

	if flagDealJSON {
		out, jsonErr := json.MarshalIndent(game.Snapshot(), "", "  ")
		if jsonErr != nil {
			fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", jsonErr)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		printDeal(game)
	}

	if !report.OK {
		fmt.Fprintln(os.Stderr, "Inventory check failed:")
		for _, issue := range report.Issues {
			fmt.Fprintf(os.Stderr, "  %s\n", issue)
		}
		os.Exit(1)
	}
	if !flagDealJSON {
		fmt.Println("inventory ok")
	}
}

// printDeal writes the layout to stdout, one column per line. Face-down
// cards show as ##.
func printDeal(g *engine.Game) {
	fmt.Printf("%s seed %s, %d cards, %d deals in stock\n\n",
		g.Difficulty.Label(), g.Seed, g.DeckSize(), g.DealsRemaining)

	for col, cards := range g.Tableau {
		labels := make([]string, len(cards))
		for i, c := range cards {
			if c.FaceUp {
				labels[i] = c.Label()
			} else {
				labels[i] = "##"
			}
		}
		fmt.Printf("  %2d: %s\n", col+1, strings.Join(labels, " "))
	}
	fmt.Println()
}
