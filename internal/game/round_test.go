package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestDealInitial(t *testing.T) {
	r := NewRound(randutil.New(1))
	require.NoError(t, r.DealInitial())

	assert.Len(t, r.Player, 2)
	assert.Len(t, r.Dealer, 2)
	assert.Equal(t, 48, r.deck.Remaining())
}

func TestPlayDealerDrawsToSeventeen(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		r := NewRound(randutil.New(seed))
		require.NoError(t, r.DealInitial())
		require.NoError(t, r.PlayDealer())

		assert.GreaterOrEqual(t, r.Dealer.Score(), 17, "seed %d left dealer below 17", seed)
	}
}

func TestPlayDealerStandsOnExistingSeventeen(t *testing.T) {
	r := NewRound(randutil.New(1))
	r.Dealer = hand(deck.Ten, deck.Seven)
	require.NoError(t, r.PlayDealer())
	assert.Len(t, r.Dealer, 2)
}

func TestResolveOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		player      Hand
		dealer      Hand
		outcome     Outcome
		wantBalance int // starting balance 900, bet 100 already debited
		wantStats   Stats
	}{
		{
			name:        "dealer busts",
			player:      hand(deck.Ten, deck.Eight),
			dealer:      hand(deck.Ten, deck.Six, deck.Eight), // 24
			outcome:     DealerBust,
			wantBalance: 1100,
			wantStats:   Stats{Games: 1, Wins: 1},
		},
		{
			name:        "player higher",
			player:      hand(deck.Ten, deck.Ten),
			dealer:      hand(deck.Ten, deck.Eight),
			outcome:     PlayerHigher,
			wantBalance: 1100,
			wantStats:   Stats{Games: 1, Wins: 1},
		},
		{
			name:        "dealer higher",
			player:      hand(deck.Ten, deck.Eight),
			dealer:      hand(deck.Ten, deck.Queen),
			outcome:     DealerHigher,
			wantBalance: 900,
			wantStats:   Stats{Games: 1, Losses: 1},
		},
		{
			name:        "player busts",
			player:      hand(deck.Ten, deck.Eight, deck.Five),
			dealer:      hand(deck.Ten, deck.Seven),
			outcome:     PlayerBust,
			wantBalance: 900,
			wantStats:   Stats{Games: 1, Losses: 1},
		},
		{
			name:        "both bust counts as player bust",
			player:      hand(deck.Ten, deck.Eight, deck.Five),
			dealer:      hand(deck.Ten, deck.Six, deck.Eight),
			outcome:     PlayerBust,
			wantBalance: 900,
			wantStats:   Stats{Games: 1, Losses: 1},
		},
		{
			name:        "push refunds bet",
			player:      hand(deck.Ten, deck.Nine),
			dealer:      hand(deck.Ten, deck.Nine),
			outcome:     Push,
			wantBalance: 1000,
			wantStats:   Stats{Games: 1, Pushes: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Wallet{Balance: 900}
			r := &Round{Player: tt.player, Dealer: tt.dealer, Bet: 100}

			got := r.Resolve(&w)
			assert.Equal(t, tt.outcome, got)
			assert.Equal(t, tt.wantBalance, w.Balance)
			assert.Equal(t, tt.wantStats, w.Stats)
			assert.Equal(t, 0, r.Bet, "bet must be cleared after settlement")
		})
	}
}

// A duplicated input event must not pay a round out twice.
func TestResolveIsIdempotent(t *testing.T) {
	w := Wallet{Balance: 900}
	r := &Round{
		Player: hand(deck.Ten, deck.Ten),
		Dealer: hand(deck.Ten, deck.Eight),
		Bet:    100,
	}

	first := r.Resolve(&w)
	balance := w.Balance
	stats := w.Stats

	second := r.Resolve(&w)
	assert.Equal(t, first, second)
	assert.Equal(t, balance, w.Balance)
	assert.Equal(t, stats, w.Stats)
	assert.Equal(t, 1, w.Stats.Games)
}

func TestOutcomePayout(t *testing.T) {
	assert.Equal(t, 2, DealerBust.Payout())
	assert.Equal(t, 2, PlayerHigher.Payout())
	assert.Equal(t, 1, Push.Payout())
	assert.Equal(t, 0, PlayerBust.Payout())
	assert.Equal(t, 0, DealerHigher.Payout())
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "Player wins!", DealerBust.Message())
	assert.Equal(t, "Player wins!", PlayerHigher.Message())
	assert.Equal(t, "Dealer wins!", PlayerBust.Message())
	assert.Equal(t, "Dealer wins!", DealerHigher.Message())
	assert.Equal(t, "Push!", Push.Message())
}
