package engine

import (
	"reflect"
	"testing"
)

func TestHintPrefersRevealingMoves(t *testing.T) {
	g := bareGame()
	// Column 0: moving the 7♠ reveals a face-down card (+3) and the
	// destination 8♠ continues the suit (+2).
	g.Tableau[0] = []Card{down(1, Hearts, 12), up(2, Spades, 7)}
	g.Tableau[1] = []Card{up(3, Spades, 8)}
	// Column 2: a plain rank-adjacent drop with nothing else going on.
	g.Tableau[2] = []Card{up(4, Clubs, 4)}
	g.Tableau[3] = []Card{up(5, Hearts, 5), up(6, Hearts, 4)}

	hints := g.Hint()
	if len(hints) == 0 {
		t.Fatal("no hints found")
	}

	best := hints[0]
	if best.From != 0 || best.To != 1 {
		t.Fatalf("best hint %+v, want the reveal+suit move 0->1", best)
	}
	if best.Score != hintRevealBonus+hintSuitBonus {
		t.Errorf("best hint score %d, want %d", best.Score, hintRevealBonus+hintSuitBonus)
	}
	if len(best.Reasons) != 2 {
		t.Errorf("best hint reasons %v, want two", best.Reasons)
	}
}

func TestHintEmptyColumnBonus(t *testing.T) {
	g := bareGame()
	g.Tableau[0] = []Card{up(1, Spades, 9)}
	g.Tableau[1] = []Card{up(2, Hearts, 10)}

	hints := g.Hint()
	var found *Candidate
	for i := range hints {
		if hints[i].From == 0 && hints[i].To == 1 {
			found = &hints[i]
			break
		}
	}
	if found == nil {
		t.Fatal("expected a 0->1 candidate")
	}
	if found.Score != hintEmptyBonus {
		t.Errorf("score %d, want empty-source bonus %d", found.Score, hintEmptyBonus)
	}
}

func TestHintTieBreakPrefersFewerCards(t *testing.T) {
	g := bareGame()
	// Two zero-score candidates onto empty columns: moving one card
	// must sort before moving two.
	g.Tableau[0] = []Card{up(1, Hearts, 9), up(2, Spades, 6), up(3, Spades, 5)}

	hints := g.Hint()
	if len(hints) < 2 {
		t.Fatalf("expected multiple candidates, got %d", len(hints))
	}
	for i := 1; i < len(hints); i++ {
		prev, cur := hints[i-1], hints[i]
		if prev.Score < cur.Score {
			t.Fatalf("hints not sorted by score: %+v before %+v", prev, cur)
		}
		if prev.Score == cur.Score && prev.CardCount > cur.CardCount {
			t.Fatalf("tie not broken by card count: %+v before %+v", prev, cur)
		}
	}
}

func TestHintIsPure(t *testing.T) {
	g := newTestGame(FourSuit, "pure", true)
	before := g.Snapshot()

	g.Hint()

	if g.CanUndo() {
		t.Error("hint wrote history")
	}
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("hint mutated state")
	}
}
