package engine

import "errors"

// Rule rejection sentinels. A non-nil return means no state changed;
// callers surface feedback, the engine never panics on illegal input.
var (
	ErrSameColumn  = errors.New("engine: source and destination are the same column")
	ErrBadColumn   = errors.New("engine: column index out of range")
	ErrBadIndex    = errors.New("engine: start index out of range")
	ErrIllegalTail = errors.New("engine: cards do not form a movable tail")
	ErrIllegalDrop = errors.New("engine: destination does not accept this card")
	ErrNoDeals     = errors.New("engine: no deals remaining")
	ErrEmptyColumn = errors.New("engine: fill empty columns before dealing")
)

// MovableTail returns the length of the maximal suffix of a column that
// moves as a unit: all face-up, same suit, strictly descending by one
// toward the top. An empty column or a face-down top yields 0.
func (g *Game) MovableTail(col int) int {
	if col < 0 || col >= NumColumns {
		return 0
	}
	cards := g.Tableau[col]
	n := len(cards)
	if n == 0 || !cards[n-1].FaceUp {
		return 0
	}
	length := 1
	for i := n - 1; i > 0; i-- {
		below := cards[i-1]
		if !below.FaceUp || below.Suit != cards[i].Suit || below.Rank != cards[i].Rank+1 {
			break
		}
		length++
	}
	return length
}

// validTail reports whether cards[start:] of the column is one valid
// movable tail (face-up, same suit, descending by one).
func validTail(cards []Card, start int) bool {
	for i := start; i < len(cards); i++ {
		if !cards[i].FaceUp {
			return false
		}
		if i > start {
			if cards[i].Suit != cards[i-1].Suit || cards[i].Rank != cards[i-1].Rank-1 {
				return false
			}
		}
	}
	return true
}

// canDrop reports whether a tail headed by head may land on the column.
// Any head lands on an empty column; otherwise ranks must be adjacent
// (suit does not matter for the drop, only for moving as a unit).
func canDrop(head Card, dst []Card) bool {
	if len(dst) == 0 {
		return true
	}
	return dst[len(dst)-1].Rank == head.Rank+1
}

// Move relocates the tail starting at start in column from onto column
// to. All checks run before any mutation, so a rejected move leaves the
// state untouched.
func (g *Game) Move(from, start, to int) error {
	if from < 0 || from >= NumColumns || to < 0 || to >= NumColumns {
		return g.reject(ErrBadColumn, "that column does not exist")
	}
	if from == to {
		return g.reject(ErrSameColumn, "pick a different destination")
	}
	src := g.Tableau[from]
	if start < 0 || start >= len(src) {
		return g.reject(ErrBadIndex, "nothing to move there")
	}
	if !validTail(src, start) {
		return g.reject(ErrIllegalTail, "those cards are not a run")
	}
	head := src[start]
	if !canDrop(head, g.Tableau[to]) {
		return g.reject(ErrIllegalDrop, head.Label()+" does not fit there")
	}

	prevScore, prevMoves := g.Score, g.Moves

	tail := src[start:]
	moved := make([]Card, len(tail))
	copy(moved, tail)
	g.Tableau[to] = append(g.Tableau[to], tail...)
	g.Tableau[from] = src[:start]

	flippedID := -1
	if n := len(g.Tableau[from]); n > 0 && !g.Tableau[from][n-1].FaceUp {
		g.Tableau[from][n-1].FaceUp = true
		flippedID = g.Tableau[from][n-1].ID
	}

	g.push(moveEntry{
		From:      from,
		To:        to,
		Cards:     moved,
		FlippedID: flippedID,
		PrevScore: prevScore,
		PrevMoves: prevMoves,
	})
	g.redo = nil
	g.Moves++
	g.applyMovePenalty()
	g.hooks.PlaySound(SoundDrop)

	g.tryComplete(to)
	g.tryComplete(from)
	g.hooks.StateChanged()
	return nil
}

// DealRow deals one card from the stock onto each column, left to
// right. Guarded: no deals may remain, and every column must hold at
// least one card (spider rules require filling empties first). The
// final deal may be short; it zeroes the remaining-deal counter.
func (g *Game) DealRow() error {
	if g.DealsRemaining <= 0 || len(g.Stock) == 0 {
		return g.reject(ErrNoDeals, "the stock is exhausted")
	}
	for col := 0; col < NumColumns; col++ {
		if len(g.Tableau[col]) == 0 {
			return g.reject(ErrEmptyColumn, "fill every empty column before dealing")
		}
	}

	prevScore, prevMoves, prevDeals := g.Score, g.Moves, g.DealsRemaining

	count := NumColumns
	if len(g.Stock) < count {
		count = len(g.Stock)
	}
	dealt := make([]Card, count)
	for i := 0; i < count; i++ {
		c := g.Stock[i]
		c.FaceUp = true
		g.Tableau[i] = append(g.Tableau[i], c)
		dealt[i] = c
	}
	g.Stock = g.Stock[count:]
	if count == NumColumns {
		g.DealsRemaining--
	} else {
		g.DealsRemaining = 0
	}

	g.push(dealEntry{
		Cards:     dealt,
		PrevDeals: prevDeals,
		PrevScore: prevScore,
		PrevMoves: prevMoves,
	})
	g.redo = nil
	g.Moves++
	g.applyMovePenalty()
	g.hooks.PlaySound(SoundDeal)

	for col := 0; col < NumColumns; col++ {
		g.tryComplete(col)
	}
	g.hooks.StateChanged()
	return nil
}

// tryComplete removes a finished run from the top of a column, if one
// is there. A run is the full contiguous face-up same-suit chain from
// King down to the low rank; without aces the 12-card window must still
// span exactly ranks 13..2 (the extreme-rank check guards against a
// right-sized chain over the wrong window).
func (g *Game) tryComplete(col int) bool {
	cards := g.Tableau[col]
	need := g.RunLength()
	n := len(cards)
	if n < need {
		return false
	}
	top := cards[n-1]
	if !top.FaceUp || top.Rank != g.lowRank() {
		return false
	}
	for i := 1; i < need; i++ {
		c := cards[n-1-i]
		above := cards[n-i]
		if !c.FaceUp || c.Suit != top.Suit || c.Rank != above.Rank+1 {
			return false
		}
	}
	if cards[n-need].Rank != RankKing {
		return false
	}

	prevScore := g.Score

	run := make([]Card, need)
	copy(run, cards[n-need:])
	g.Tableau[col] = cards[:n-need]
	g.Foundations.Completed++
	g.Foundations.Cards = append(g.Foundations.Cards, run...)

	flippedID := -1
	if m := len(g.Tableau[col]); m > 0 && !g.Tableau[col][m-1].FaceUp {
		g.Tableau[col][m-1].FaceUp = true
		flippedID = g.Tableau[col][m-1].ID
	}

	g.push(completeEntry{
		Col:       col,
		Cards:     run,
		FlippedID: flippedID,
		PrevScore: prevScore,
	})
	g.Score += g.scoring.CompletionBonus
	g.hooks.PlaySound(SoundComplete)
	g.hooks.Message(top.Suit.Glyph()+" run completed", false)

	if g.Won() {
		g.Running = false
		g.hooks.PlaySound(SoundWin)
		g.hooks.Win()
	}
	return true
}

// reject reports a rule violation through the hooks and returns the
// sentinel unchanged. No state is mutated.
func (g *Game) reject(err error, text string) error {
	g.hooks.PlaySound(SoundInvalid)
	g.hooks.Message(text, true)
	return err
}
