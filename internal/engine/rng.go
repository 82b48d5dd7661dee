package engine

// RNG is a small deterministic generator seeded from a string key.
// Two generators built from the same key produce the same sequence
// forever; this is what makes seeds shareable between players.
type RNG struct {
	state uint32
}

// hashKey folds a string into a 32-bit state (FNV-1a). Order-sensitive
// and case-sensitive: "abc" and "acb" seed different games.
func hashKey(key string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return h
}

// NewRNG creates a generator from a string key.
func NewRNG(key string) *RNG {
	return &RNG{state: hashKey(key)}
}

// Next returns the next value in [0, 1).
func (r *RNG) Next() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Intn returns an integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Next() * float64(n))
}

// Shuffle permutes cards in place with Fisher-Yates, iterating from the
// last index down to 1 and drawing the swap index from Next.
func (r *RNG) Shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// rngKey combines the difficulty label and seed string into the
// generator key. The separator keeps the combination unambiguous.
func rngKey(d Difficulty, seed string) string {
	return d.Label() + ":" + seed
}
