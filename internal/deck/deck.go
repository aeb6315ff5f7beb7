package deck

import (
	rand "math/rand/v2"
)

// Deck is an ordered sequence of cards consumed from the top. A fresh deck
// holds all 52 unique cards; the count only decreases until Reset.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck. The RNG is used for shuffling;
// pass a seeded source for deterministic hands in tests.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top n cards in shuffle order. Drawing more
// cards than remain returns what is left.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset restores the deck to a full 52-card deck and shuffles it.
// Called at the start of each hand.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	d.fill()
	d.Shuffle()
}
