package engine

import "sort"

// Candidate is one legal move the advisor found, with its heuristic
// score and the human-readable reasons behind it.
type Candidate struct {
	From      int
	Start     int
	To        int
	CardCount int
	Score     int
	Reasons   []string
}

// Heuristic weights. Revealing hidden cards dominates; continuing a
// suit run and emptying a column are worth the same.
const (
	hintRevealBonus = 3
	hintSuitBonus   = 2
	hintEmptyBonus  = 2
)

// Hint enumerates every legal (tail, destination) pair and ranks them:
// highest score first, fewer cards first on ties. It is a pure query
// over the current state; nothing is mutated and no history is written.
func (g *Game) Hint() []Candidate {
	var out []Candidate

	for from := 0; from < NumColumns; from++ {
		src := g.Tableau[from]
		tailLen := g.MovableTail(from)
		for count := 1; count <= tailLen; count++ {
			start := len(src) - count
			head := src[start]
			for to := 0; to < NumColumns; to++ {
				if to == from {
					continue
				}
				dst := g.Tableau[to]
				if !canDrop(head, dst) {
					continue
				}

				c := Candidate{From: from, Start: start, To: to, CardCount: count}
				if start > 0 && !src[start-1].FaceUp {
					c.Score += hintRevealBonus
					c.Reasons = append(c.Reasons, "reveals a face-down card")
				}
				if len(dst) > 0 && dst[len(dst)-1].Suit == head.Suit {
					c.Score += hintSuitBonus
					c.Reasons = append(c.Reasons, "continues the suit run")
				}
				if start == 0 {
					c.Score += hintEmptyBonus
					c.Reasons = append(c.Reasons, "empties the source column")
				}
				out = append(out, c)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CardCount < out[j].CardCount
	})
	return out
}
