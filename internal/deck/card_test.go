package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected int
	}{
		{"two", NewCard(Spades, Two), 2},
		{"nine", NewCard(Hearts, Nine), 9},
		{"ten", NewCard(Diamonds, Ten), 10},
		{"jack", NewCard(Clubs, Jack), 10},
		{"queen", NewCard(Spades, Queen), 10},
		{"king", NewCard(Hearts, King), 10},
		{"ace", NewCard(Diamonds, Ace), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.card.Value())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "10♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "K♦", NewCard(Diamonds, King).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
}

func TestSuitIsRed(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
}
