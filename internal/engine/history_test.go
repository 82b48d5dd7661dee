package engine

import (
	"reflect"
	"testing"
)

func TestUndoMoveIsExactInverse(t *testing.T) {
	g := newTestGame(OneSuit, "undo1", true)

	hints := g.Hint()
	if len(hints) == 0 {
		t.Skip("seed produced no legal opening move")
	}
	before := g.Snapshot()

	h := hints[0]
	if err := g.Move(h.From, h.Start, h.To); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	g.Undo()

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("undo did not restore the exact prior state")
	}
}

func TestUndoRestoresFlip(t *testing.T) {
	g := bareGame()
	g.Tableau[0] = []Card{down(1, Hearts, 4), up(2, Spades, 7)}
	g.Tableau[1] = []Card{up(3, Clubs, 8)}

	if err := g.Move(0, 1, 1); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if !g.Tableau[0][0].FaceUp {
		t.Fatal("exposed card did not flip")
	}

	g.Undo()
	if g.Tableau[0][0].FaceUp {
		t.Error("undo did not revert the flip")
	}
	if len(g.Tableau[0]) != 2 || g.Tableau[0][1].ID != 2 {
		t.Error("undo did not return the moved card")
	}
}

func TestUndoDealRestoresStockOrder(t *testing.T) {
	g := newTestGame(TwoSuit, "undodeal", true)
	before := g.Snapshot()

	if err := g.DealRow(); err != nil {
		t.Fatalf("deal rejected: %v", err)
	}
	g.Undo()

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("undo of a deal did not restore the exact prior state")
	}
}

func TestUndoComplete(t *testing.T) {
	g := bareGame()
	g.Tableau[0] = append([]Card{down(99, Hearts, 7)}, runOf(0, Spades, 13, 2)...)
	g.Tableau[1] = []Card{up(50, Spades, 1)}

	if err := g.Move(1, 0, 0); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if g.Foundations.Completed != 1 {
		t.Fatal("run did not complete")
	}

	// The completion and the move are separate history entries.
	g.Undo() // completion
	if g.Foundations.Completed != 0 || len(g.Foundations.Cards) != 0 {
		t.Error("undo did not restore the foundations")
	}
	if len(g.Tableau[0]) != 14 {
		t.Errorf("column 0 has %d cards after undoing completion, want 14", len(g.Tableau[0]))
	}
	if g.Tableau[0][0].FaceUp {
		t.Error("undo did not revert the completion flip")
	}

	g.Undo() // the move itself
	if len(g.Tableau[1]) != 1 || g.Tableau[1][0].Rank != 1 {
		t.Error("undo did not return the ace to its column")
	}
}

func TestUndoRedoSequence(t *testing.T) {
	g := newTestGame(OneSuit, "seq", true)

	// Apply a run of forward operations, snapshotting before each.
	var snaps []Snapshot
	ops := 0
	for ops < 6 {
		snaps = append(snaps, g.Snapshot())
		hints := g.Hint()
		if len(hints) > 0 {
			h := hints[0]
			if err := g.Move(h.From, h.Start, h.To); err != nil {
				t.Fatalf("move rejected: %v", err)
			}
		} else if err := g.DealRow(); err != nil {
			snaps = snaps[:len(snaps)-1]
			break
		}
		ops++
	}
	if ops == 0 {
		t.Skip("no forward operations possible")
	}
	after := g.Snapshot()

	// Undo everything: each step must land exactly on the snapshot
	// taken before the corresponding forward operation. (No completion
	// is reachable this early, so ops and entries are one-to-one.)
	for i := ops - 1; i >= 0; i-- {
		g.Undo()
		if !reflect.DeepEqual(g.Snapshot(), snaps[i]) {
			t.Fatalf("undo chain diverged at op %d", i)
		}
	}

	// Redo everything back to the final state.
	for g.CanRedo() {
		g.Redo()
	}
	if !reflect.DeepEqual(g.Snapshot(), after) {
		t.Error("redo chain did not restore the final state")
	}
}

func TestRedoRestoresScoreAndMoves(t *testing.T) {
	g := bareGame()
	g.Tableau[0] = []Card{up(1, Spades, 7)}
	g.Tableau[1] = []Card{up(2, Spades, 8)}

	if err := g.Move(0, 0, 1); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	scoreAfter, movesAfter := g.Score, g.Moves

	g.Undo()
	if g.Moves != 0 || g.Score != DefaultScoring.StartingScore {
		t.Fatalf("undo did not restore score/moves: score=%d moves=%d", g.Score, g.Moves)
	}

	g.Redo()
	if g.Score != scoreAfter || g.Moves != movesAfter {
		t.Errorf("redo score=%d moves=%d, want %d/%d", g.Score, g.Moves, scoreAfter, movesAfter)
	}
	if len(g.Tableau[1]) != 2 {
		t.Error("redo did not re-apply the move")
	}
}

func TestUndoScoreFloor(t *testing.T) {
	// A move taken at score 0 keeps the score at 0; undo must restore
	// the true prior value, not recompute through the floor.
	g := bareGame()
	g.Score = 0
	g.Tableau[0] = []Card{up(1, Spades, 7)}
	g.Tableau[1] = []Card{up(2, Spades, 8)}

	if err := g.Move(0, 0, 1); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if g.Score != 0 {
		t.Fatalf("score %d, want floored 0", g.Score)
	}
	g.Undo()
	if g.Score != 0 {
		t.Errorf("undo restored score %d, want 0", g.Score)
	}
}

func TestNewMoveClearsRedo(t *testing.T) {
	g := bareGame()
	g.Tableau[0] = []Card{up(1, Spades, 7)}
	g.Tableau[1] = []Card{up(2, Spades, 8)}
	g.Tableau[2] = []Card{up(3, Hearts, 8)}

	if err := g.Move(0, 0, 1); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	g.Undo()
	if !g.CanRedo() {
		t.Fatal("expected redo to be available after undo")
	}

	if err := g.Move(0, 0, 2); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if g.CanRedo() {
		t.Error("a new move must clear the redo stack")
	}
}

func TestUndoRedoUnderflowIsNoop(t *testing.T) {
	g := newTestGame(OneSuit, "nop", true)
	before := g.Snapshot()

	g.Undo()
	g.Redo()

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("undo/redo underflow mutated state")
	}
}

func TestRedoDeal(t *testing.T) {
	g := newTestGame(OneSuit, "redodeal", true)

	if err := g.DealRow(); err != nil {
		t.Fatalf("deal rejected: %v", err)
	}
	after := g.Snapshot()

	g.Undo()
	g.Redo()

	if !reflect.DeepEqual(g.Snapshot(), after) {
		t.Error("redo of a deal did not reproduce the dealt state")
	}
}
