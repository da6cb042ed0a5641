package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(1))
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Len(t, seen, 52)
	assert.Equal(t, 0, d.Remaining())
}

func TestDrawFromEmptyDeck(t *testing.T) {
	d := New(randutil.New(1))
	for i := 0; i < 52; i++ {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	d1 := New(randutil.New(42))
	d2 := New(randutil.New(42))
	for i := 0; i < 52; i++ {
		c1, err := d1.Draw()
		require.NoError(t, err)
		c2, err := d2.Draw()
		require.NoError(t, err)
		assert.Equal(t, c1, c2)
	}
}

func TestShuffleVariesBySeed(t *testing.T) {
	d1 := New(randutil.New(1))
	d2 := New(randutil.New(2))

	same := 0
	for i := 0; i < 52; i++ {
		c1, _ := d1.Draw()
		c2, _ := d2.Draw()
		if c1 == c2 {
			same++
		}
	}
	assert.Less(t, same, 52, "different seeds produced identical orderings")
}
