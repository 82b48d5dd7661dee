package engine

import (
	"fmt"
	"sort"
)

// InventoryCounts is the recomputed card census.
type InventoryCounts struct {
	Total      int
	Tableau    int
	Stock      int
	Foundation int
	BySuit     map[Suit]int
	ByRank     map[int]int
}

// Report is the result of an inventory verification pass. Every
// discrepancy becomes its own issue string; nothing halts early and
// nothing is mutated. This is a diagnostic, not a gameplay gate.
type Report struct {
	OK     bool
	Issues []string
	Counts InventoryCounts
	Notes  []string
}

// VerifyInventory recomputes all card counts and distributions from
// scratch and cross-checks them against what (difficulty, includeAces,
// completed runs, stock length) say they must be.
func (g *Game) VerifyInventory() Report {
	r := Report{
		Counts: InventoryCounts{
			BySuit: make(map[Suit]int),
			ByRank: make(map[int]int),
		},
	}

	seen := make(map[int]string, g.DeckSize())
	count := func(c Card, where string) {
		r.Counts.Total++
		r.Counts.BySuit[c.Suit]++
		r.Counts.ByRank[c.Rank]++
		if prev, dup := seen[c.ID]; dup {
			r.Issues = append(r.Issues,
				fmt.Sprintf("card id %d (%s) present in both %s and %s", c.ID, c.Label(), prev, where))
		}
		seen[c.ID] = where
	}

	for col := 0; col < NumColumns; col++ {
		sawFaceUp := false
		for _, c := range g.Tableau[col] {
			count(c, fmt.Sprintf("column %d", col))
			r.Counts.Tableau++
			if c.FaceUp {
				sawFaceUp = true
			} else if sawFaceUp {
				r.Issues = append(r.Issues,
					fmt.Sprintf("column %d: face-down %s sits above a face-up card", col, c.Label()))
			}
		}
	}
	for _, c := range g.Stock {
		count(c, "stock")
		r.Counts.Stock++
		if c.FaceUp {
			r.Issues = append(r.Issues,
				fmt.Sprintf("stock: %s is face-up", c.Label()))
		}
	}
	for _, c := range g.Foundations.Cards {
		count(c, "foundations")
		r.Counts.Foundation++
	}

	if r.Counts.Total != g.DeckSize() {
		r.Issues = append(r.Issues,
			fmt.Sprintf("total card count %d, expected %d", r.Counts.Total, g.DeckSize()))
	}
	if want := g.Foundations.Completed * g.RunLength(); r.Counts.Foundation != want {
		r.Issues = append(r.Issues,
			fmt.Sprintf("foundations hold %d cards, %d completed runs require %d",
				r.Counts.Foundation, g.Foundations.Completed, want))
	}
	if want := dealsFor(len(g.Stock)); g.DealsRemaining != want {
		r.Issues = append(r.Issues,
			fmt.Sprintf("dealsRemaining %d inconsistent with stock length %d (want %d)",
				g.DealsRemaining, len(g.Stock), want))
	}

	// Distribution checks against the deck the builder must have made.
	ranksPerSuit := g.RunLength()
	perSuit := suitCopies(g.Difficulty) * ranksPerSuit
	for _, suit := range deckSuits(g.Difficulty) {
		if got := r.Counts.BySuit[suit]; got != perSuit {
			r.Issues = append(r.Issues,
				fmt.Sprintf("suit %s has %d cards, expected %d", suit, got, perSuit))
		}
	}
	lowest := g.lowRank()
	for rank := RankAce; rank <= RankKing; rank++ {
		want := 8
		if rank < lowest {
			want = 0
		}
		if got := r.Counts.ByRank[rank]; got != want {
			r.Issues = append(r.Issues,
				fmt.Sprintf("rank %s has %d cards, expected %d", RankName(rank), got, want))
		}
	}
	for suit, got := range r.Counts.BySuit {
		expected := false
		for _, s := range deckSuits(g.Difficulty) {
			if s == suit {
				expected = true
			}
		}
		if !expected {
			r.Issues = append(r.Issues,
				fmt.Sprintf("suit %s has %d cards but is not part of this variant", suit, got))
		}
	}

	sort.Strings(r.Issues)
	r.OK = len(r.Issues) == 0
	r.Notes = append(r.Notes,
		fmt.Sprintf("deals remaining: %d", g.DealsRemaining),
		fmt.Sprintf("completed runs: %d of %d", g.Foundations.Completed, RunsToWin),
		fmt.Sprintf("moves: %d, score: %d", g.Moves, g.Score),
	)
	return r
}
