package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned when drawing from an empty deck. A single
// blackjack round between two participants can never legitimately use
// all 52 cards, so hitting this is a round-engine bug, not a shuffle
// problem.
var ErrExhausted = errors.New("deck exhausted")

// Deck represents a shuffled 52-card deck for a single round
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck and shuffles it once with the
// provided RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.shuffle(rng)
	return d
}

// shuffle performs a Fisher-Yates shuffle
func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card of the deck. The top is the
// tail of the slice.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
