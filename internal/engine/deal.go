package engine

// Tableau layout. The first four columns start one card deeper than the
// remaining six (6+6+6+6+5+5+5+5+5+5 = 54 cards dealt).
const (
	NumColumns      = 10
	deepColumns     = 4
	deepColumnSize  = 6
	shortColumnSize = 5
)

// dealLayout distributes an already-shuffled deck into the ten tableau
// columns and the stock. Only the top card of each column is face-up;
// everything else, including the whole stock, stays face-down.
func dealLayout(deck []Card) (tableau [NumColumns][]Card, stock []Card) {
	idx := 0
	for col := 0; col < NumColumns; col++ {
		size := shortColumnSize
		if col < deepColumns {
			size = deepColumnSize
		}
		column := make([]Card, size)
		copy(column, deck[idx:idx+size])
		idx += size
		column[size-1].FaceUp = true
		tableau[col] = column
	}
	stock = make([]Card, len(deck)-idx)
	copy(stock, deck[idx:])
	return tableau, stock
}

// dealsFor returns the number of deals left for a stock of the given
// size: one per full row of ten, plus one for any remainder.
func dealsFor(stockLen int) int {
	return (stockLen + NumColumns - 1) / NumColumns
}
