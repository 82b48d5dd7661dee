package engine

// History entries are a closed sum: one variant per reversible
// operation, each carrying exactly what its inverse needs. Prior score
// and move-counter values are recorded because the score floor at zero
// is lossy in the forward direction.

type historyEntry interface {
	entryKind() string
}

// moveEntry records a tableau-to-tableau tail move.
type moveEntry struct {
	From      int
	To        int
	Cards     []Card // snapshot of the moved tail, post-move (face-up)
	FlippedID int    // card flipped face-up in the source, -1 if none
	PrevScore int
	PrevMoves int
}

// dealEntry records one row dealt from the stock. Cards holds the dealt
// cards in column order; a final short deal holds fewer than ten.
type dealEntry struct {
	Cards     []Card
	PrevDeals int
	PrevScore int
	PrevMoves int
}

// completeEntry records a run removed to the foundations.
type completeEntry struct {
	Col       int
	Cards     []Card // the removed run, bottom (King) first
	FlippedID int
	PrevScore int
}

func (moveEntry) entryKind() string     { return "move" }
func (dealEntry) entryKind() string     { return "deal" }
func (completeEntry) entryKind() string { return "complete" }

func (g *Game) push(e historyEntry) {
	g.history = append(g.history, e)
}

// Undo reverses the most recent operation exactly, including face
// flags, score, and counters. With nothing to undo it is a silent
// no-op. The reversed entry moves to the redo stack.
func (g *Game) Undo() {
	if len(g.history) == 0 {
		return
	}
	e := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	switch e := e.(type) {
	case moveEntry:
		g.undoMove(e)
	case dealEntry:
		g.undoDeal(e)
	case completeEntry:
		g.undoComplete(e)
	}

	g.redo = append(g.redo, e)
	g.hooks.PlaySound(SoundUndo)
	g.hooks.StateChanged()
}

// Redo re-applies the most recently undone operation. The entry already
// encodes a previously-legal transition, so legality is not re-checked;
// forward effects (counters, score) are recomputed, which is
// deterministic against the state Undo restored.
func (g *Game) Redo() {
	if len(g.redo) == 0 {
		return
	}
	e := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]

	switch e := e.(type) {
	case moveEntry:
		g.redoMove(e)
	case dealEntry:
		g.redoDeal(e)
	case completeEntry:
		g.redoComplete(e)
	}

	g.history = append(g.history, e)
	g.hooks.StateChanged()
}

func (g *Game) undoMove(e moveEntry) {
	// Revert the flip before putting the tail back, while the flipped
	// card is still the source top.
	if e.FlippedID >= 0 {
		src := g.Tableau[e.From]
		src[len(src)-1].FaceUp = false
	}
	dst := g.Tableau[e.To]
	k := len(e.Cards)
	g.Tableau[e.From] = append(g.Tableau[e.From], dst[len(dst)-k:]...)
	g.Tableau[e.To] = dst[:len(dst)-k]
	g.Score = e.PrevScore
	g.Moves = e.PrevMoves
}

func (g *Game) redoMove(e moveEntry) {
	src := g.Tableau[e.From]
	k := len(e.Cards)
	g.Tableau[e.To] = append(g.Tableau[e.To], src[len(src)-k:]...)
	g.Tableau[e.From] = src[:len(src)-k]
	if e.FlippedID >= 0 {
		col := g.Tableau[e.From]
		col[len(col)-1].FaceUp = true
	}
	g.Moves++
	g.applyMovePenalty()
}

func (g *Game) undoDeal(e dealEntry) {
	k := len(e.Cards)
	undealt := make([]Card, k)
	for i := k - 1; i >= 0; i-- {
		col := g.Tableau[i]
		c := col[len(col)-1]
		c.FaceUp = false
		g.Tableau[i] = col[:len(col)-1]
		undealt[i] = c
	}
	g.Stock = append(undealt, g.Stock...)
	g.DealsRemaining = e.PrevDeals
	g.Score = e.PrevScore
	g.Moves = e.PrevMoves
}

func (g *Game) redoDeal(e dealEntry) {
	k := len(e.Cards)
	for i := 0; i < k; i++ {
		c := g.Stock[i]
		c.FaceUp = true
		g.Tableau[i] = append(g.Tableau[i], c)
	}
	g.Stock = g.Stock[k:]
	if k == NumColumns {
		g.DealsRemaining--
	} else {
		g.DealsRemaining = 0
	}
	g.Moves++
	g.applyMovePenalty()
}

func (g *Game) undoComplete(e completeEntry) {
	if e.FlippedID >= 0 {
		col := g.Tableau[e.Col]
		col[len(col)-1].FaceUp = false
	}
	g.Tableau[e.Col] = append(g.Tableau[e.Col], e.Cards...)
	g.Foundations.Cards = g.Foundations.Cards[:len(g.Foundations.Cards)-len(e.Cards)]
	g.Foundations.Completed--
	g.Score = e.PrevScore
	g.Running = true
}

func (g *Game) redoComplete(e completeEntry) {
	col := g.Tableau[e.Col]
	k := len(e.Cards)
	g.Foundations.Cards = append(g.Foundations.Cards, col[len(col)-k:]...)
	g.Foundations.Completed++
	g.Tableau[e.Col] = col[:len(col)-k]
	if e.FlippedID >= 0 {
		rest := g.Tableau[e.Col]
		rest[len(rest)-1].FaceUp = true
	}
	g.Score += g.scoring.CompletionBonus
	if g.Won() {
		g.Running = false
		g.hooks.Win()
	}
}
