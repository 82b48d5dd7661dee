package engine

import (
	"fmt"
	"time"
)

// SnapshotVersion is the only persisted layout this engine reads.
const SnapshotVersion = 1

// copyCards returns a value copy, never nil, so snapshots of the same
// state always compare equal regardless of how a slice became empty.
func copyCards(src []Card) []Card {
	out := make([]Card, len(src))
	copy(out, src)
	return out
}

// Snapshot is a point-in-time deep copy of a game, suitable for
// persistence. Cards are copied by value, so a stored snapshot never
// aliases the live state. History stacks are deliberately not carried;
// a restored game starts with empty undo/redo.
type Snapshot struct {
	Version        int      `json:"version"`
	Difficulty     string   `json:"difficulty"`
	Seed           string   `json:"seed"`
	IncludeAces    bool     `json:"includeAces"`
	DealsRemaining int      `json:"dealsRemaining"`
	Completed      int      `json:"completed"`
	Moves          int      `json:"moves"`
	Score          int      `json:"score"`
	ElapsedMS      int64    `json:"elapsedMs"`
	Tableau        [][]Card `json:"tableau"`
	Stock          []Card   `json:"stock"`
	Foundations    []Card   `json:"foundations"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Version:        SnapshotVersion,
		Difficulty:     g.Difficulty.Label(),
		Seed:           g.Seed,
		IncludeAces:    g.IncludeAces,
		DealsRemaining: g.DealsRemaining,
		Completed:      g.Foundations.Completed,
		Moves:          g.Moves,
		Score:          g.Score,
		ElapsedMS:      g.Elapsed.Milliseconds(),
		Tableau:        make([][]Card, NumColumns),
		Stock:          copyCards(g.Stock),
		Foundations:    copyCards(g.Foundations.Cards),
	}
	for col := 0; col < NumColumns; col++ {
		s.Tableau[col] = copyCards(g.Tableau[col])
	}
	return s
}

// RestoreSnapshot replaces the whole game state with the snapshot. The
// dealt cards are restored verbatim, never re-shuffled; the PRNG is
// rebuilt from (difficulty, seed) so a restored game stays consistent
// with the seed contract.
func (g *Game) RestoreSnapshot(s Snapshot) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("engine: unsupported snapshot version %d", s.Version)
	}
	d, err := ParseDifficulty(s.Difficulty)
	if err != nil {
		return fmt.Errorf("engine: bad snapshot: %w", err)
	}
	if len(s.Tableau) != NumColumns {
		return fmt.Errorf("engine: bad snapshot: %d tableau columns", len(s.Tableau))
	}

	g.Difficulty = d
	g.IncludeAces = s.IncludeAces
	g.Seed = s.Seed
	g.rng = NewRNG(rngKey(d, s.Seed))

	for col := 0; col < NumColumns; col++ {
		g.Tableau[col] = copyCards(s.Tableau[col])
	}
	g.Stock = copyCards(s.Stock)
	g.Foundations = Foundations{
		Completed: s.Completed,
		Cards:     copyCards(s.Foundations),
	}
	g.DealsRemaining = s.DealsRemaining
	g.Moves = s.Moves
	g.Score = s.Score
	g.Elapsed = time.Duration(s.ElapsedMS) * time.Millisecond
	g.Running = !g.Won()
	g.history = nil
	g.redo = nil

	g.hooks.StateChanged()
	return nil
}
