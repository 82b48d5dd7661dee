package engine

import (
	"fmt"
	"time"
)

// RunsToWin is the number of completed runs that wins a game. Both deck
// sizes divide evenly into eight runs (104/13 and 96/12).
const RunsToWin = 8

// Scoring holds the score constants. They are configuration, not
// engine literals; the config package carries the canonical defaults.
type Scoring struct {
	StartingScore   int
	MovePenalty     int
	CompletionBonus int
}

// DefaultScoring is used when the caller passes a zero Scoring.
var DefaultScoring = Scoring{
	StartingScore:   500,
	MovePenalty:     1,
	CompletionBonus: 100,
}

// Foundations tracks completed King-to-low runs: a counter plus the flat
// list of removed cards, kept for undo and inventory checks.
type Foundations struct {
	Completed int
	Cards     []Card
}

// Game is the full solitaire state. It is exclusively owned and mutated
// by its own operations; readers (hints, verification, rendering) never
// write to it. Operations run to completion synchronously, so there is
// no concurrent mutation path.
type Game struct {
	Difficulty     Difficulty
	IncludeAces    bool
	Seed           string
	Tableau        [NumColumns][]Card
	Stock          []Card
	Foundations    Foundations
	DealsRemaining int
	Moves          int
	Score          int
	Elapsed        time.Duration
	Running        bool

	scoring Scoring
	hooks   Hooks
	rng     *RNG
	history []historyEntry
	redo    []historyEntry
}

// New creates an engine with the given hooks and scoring constants.
// Nil hooks and a zero Scoring fall back to no-op hooks and
// DefaultScoring. Call NewGame before using any operation.
func New(hooks Hooks, scoring Scoring) *Game {
	if hooks == nil {
		hooks = NopHooks{}
	}
	if scoring == (Scoring{}) {
		scoring = DefaultScoring
	}
	return &Game{hooks: hooks, scoring: scoring}
}

// NewGame discards any current state and deals a fresh game. An empty
// seed is replaced with a random token; identical (difficulty, seed,
// includeAces) always produce an identical layout.
func (g *Game) NewGame(d Difficulty, seed string, includeAces bool) {
	if seed == "" {
		seed = fmt.Sprintf("%08x", uint32(time.Now().UnixNano()))
	}

	g.Difficulty = d
	g.IncludeAces = includeAces
	g.Seed = seed
	g.rng = NewRNG(rngKey(d, seed))

	deck := BuildDeck(d, includeAces)
	g.rng.Shuffle(deck)
	g.Tableau, g.Stock = dealLayout(deck)
	g.DealsRemaining = dealsFor(len(g.Stock))

	g.Foundations = Foundations{}
	g.Moves = 0
	g.Score = g.scoring.StartingScore
	g.Elapsed = 0
	g.Running = true
	g.history = nil
	g.redo = nil

	g.hooks.StateChanged()
}

// DeckSize returns the expected total card count for this game.
func (g *Game) DeckSize() int {
	if g.IncludeAces {
		return FullDeckSize
	}
	return NoAcesDeckSize
}

// RunLength is the length of a completable run: King down to Ace, or
// King down to 2 when aces are excluded.
func (g *Game) RunLength() int {
	if g.IncludeAces {
		return 13
	}
	return 12
}

// lowRank is the rank a run must end with at the column top.
func (g *Game) lowRank() int {
	if g.IncludeAces {
		return RankAce
	}
	return 2
}

// Won reports whether all eight runs have been completed.
func (g *Game) Won() bool {
	return g.Foundations.Completed >= RunsToWin
}

// CanUndo reports whether an operation can be undone.
func (g *Game) CanUndo() bool { return len(g.history) > 0 }

// CanRedo reports whether an undone operation can be redone.
func (g *Game) CanRedo() bool { return len(g.redo) > 0 }

// Advance adds wall-clock time to the elapsed counter while the game is
// running. Driven by an external tick; not correctness-critical.
func (g *Game) Advance(d time.Duration) {
	if g.Running && d > 0 {
		g.Elapsed += d
	}
}

// applyMovePenalty charges the per-move score penalty, floored at zero.
func (g *Game) applyMovePenalty() {
	g.Score -= g.scoring.MovePenalty
	if g.Score < 0 {
		g.Score = 0
	}
}
