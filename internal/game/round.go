package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjack-cli/internal/deck"
)

// dealerStand is the score at which the dealer stops drawing
const dealerStand = 17

// Round is the ephemeral state of a single hand of blackjack: a fresh
// shuffled deck, the two hands and the bet riding on them. It is created
// when the first bet lands and discarded after resolution.
type Round struct {
	Player Hand
	Dealer Hand
	Bet    int

	deck     *deck.Deck
	resolved bool
	outcome  Outcome
}

// NewRound creates a round with a freshly shuffled deck
func NewRound(rng *rand.Rand) *Round {
	return &Round{deck: deck.New(rng)}
}

// DealInitial deals two cards each to player and dealer
func (r *Round) DealInitial() error {
	for i := 0; i < 2; i++ {
		if err := r.HitPlayer(); err != nil {
			return err
		}
		if err := r.hitDealer(); err != nil {
			return err
		}
	}
	return nil
}

// HitPlayer draws one card into the player's hand
func (r *Round) HitPlayer() error {
	card, err := r.deck.Draw()
	if err != nil {
		return fmt.Errorf("player draw: %w", err)
	}
	r.Player.Add(card)
	return nil
}

func (r *Round) hitDealer() error {
	card, err := r.deck.Draw()
	if err != nil {
		return fmt.Errorf("dealer draw: %w", err)
	}
	r.Dealer.Add(card)
	return nil
}

// PlayDealer draws for the dealer until the house rule is satisfied.
// Each draw raises the score by at least 1, so the loop terminates.
func (r *Round) PlayDealer() error {
	for r.Dealer.Score() < dealerStand {
		if err := r.hitDealer(); err != nil {
			return err
		}
	}
	return nil
}

// Resolved returns true once the round has been settled
func (r *Round) Resolved() bool {
	return r.resolved
}

// Outcome returns the settled outcome, OutcomeNone before resolution
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Resolve compares the two final hands, settles the bet into the wallet
// and records the round in the statistics. Calling it again returns the
// cached outcome without re-applying the payout, so a duplicated input
// event cannot pay twice.
func (r *Round) Resolve(w *Wallet) Outcome {
	if r.resolved {
		return r.outcome
	}
	r.resolved = true

	playerScore := r.Player.Score()
	dealerScore := r.Dealer.Score()

	switch {
	case playerScore > 21:
		r.outcome = PlayerBust
	case dealerScore > 21:
		r.outcome = DealerBust
	case playerScore > dealerScore:
		r.outcome = PlayerHigher
	case dealerScore > playerScore:
		r.outcome = DealerHigher
	default:
		r.outcome = Push
	}

	w.Credit(r.Bet * r.outcome.Payout())
	w.Stats.record(r.outcome)
	r.Bet = 0

	return r.outcome
}
