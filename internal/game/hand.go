package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Hand is an ordered sequence of cards held by the player or the dealer.
// Cards are only ever appended.
type Hand []deck.Card

// Add appends a drawn card to the hand
func (h *Hand) Add(c deck.Card) {
	*h = append(*h, c)
}

// Score returns the best blackjack value of the hand. Aces count 11
// until the total exceeds 21, then soften to 1 one at a time. A result
// above 21 means every ace is already hard and the hand is bust.
func (h Hand) Score() int {
	score := 0
	aces := 0
	for _, c := range h {
		if c.IsAce() {
			aces++
		}
		score += c.Value()
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// Bust returns true if the hand scores over 21
func (h Hand) Bust() bool {
	return h.Score() > 21
}

// String returns the hand as space-separated cards (e.g. "A♠ K♦")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
