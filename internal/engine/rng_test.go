package engine

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG("4-suit:peacock123")
	b := NewRNG("4-suit:peacock123")

	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("sequence diverged at step %d: %v vs %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Next() out of [0,1) at step %d: %v", i, va)
		}
	}
}

func TestRNGKeySensitivity(t *testing.T) {
	// Different keys, case changes, and reordered characters must all
	// produce different sequences.
	for _, key := range []string{"4-suit:abd", "4-suit:ABC", "4-suit:acb", "2-suit:abc"} {
		other := NewRNG(key)
		same := true
		ref := NewRNG("4-suit:abc")
		for i := 0; i < 16; i++ {
			if ref.Next() != other.Next() {
				same = false
				break
			}
		}
		if same {
			t.Errorf("key %q produced the same sequence as 4-suit:abc", key)
		}
	}
}

func TestRNGIntnBounds(t *testing.T) {
	r := NewRNG("bounds")
	for i := 0; i < 10000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) returned %d", v)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	deck1 := BuildDeck(FourSuit, true)
	deck2 := BuildDeck(FourSuit, true)

	NewRNG("4-suit:test1").Shuffle(deck1)
	NewRNG("4-suit:test1").Shuffle(deck2)

	for i := range deck1 {
		if deck1[i] != deck2[i] {
			t.Fatalf("shuffles diverged at index %d: %v vs %v", i, deck1[i], deck2[i])
		}
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	deck := BuildDeck(TwoSuit, true)
	NewRNG("2-suit:x").Shuffle(deck)

	ids := make(map[int]bool, len(deck))
	for _, c := range deck {
		if ids[c.ID] {
			t.Fatalf("duplicate id %d after shuffle", c.ID)
		}
		ids[c.ID] = true
	}
	if len(ids) != FullDeckSize {
		t.Fatalf("expected %d unique ids, got %d", FullDeckSize, len(ids))
	}
}
