package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/payment"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/shop"
	"github.com/lox/blackjack-cli/internal/store"
)

// ErrInvalidAction is returned when an action arrives in a phase that
// does not permit it
var ErrInvalidAction = errors.New("action not valid in current phase")

// Rules are the tunable table parameters
type Rules struct {
	StartingStake int
	ChipDenoms    []int
	TopUpDenoms   []int
}

// DefaultRules returns the standard table setup
func DefaultRules() Rules {
	return Rules{
		StartingStake: store.StartingBalance,
		ChipDenoms:    []int{50, 100, 200, 500},
		TopUpDenoms:   []int{500, 1000, 2000},
	}
}

// Session owns all mutable game state for one player: wallet, cosmetic
// inventory, the active round and the current phase. Every user action
// flows through Apply on a single goroutine; there are no ambient
// globals and no locks.
type Session struct {
	rules  Rules
	wallet Wallet
	inv    shop.Inventory
	round  *Round
	phase  Phase

	rng     *rand.Rand
	gateway store.Gateway
	logger  *log.Logger

	// message is routine user-visible feedback (insufficient balance,
	// payment rejections, purchase confirmations)
	message string
}

// SessionOption customises a session at construction
type SessionOption func(*Session)

// WithSeed fixes the RNG seed for deterministic shuffles
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = randutil.New(seed)
	}
}

// WithRules overrides the default table rules
func WithRules(rules Rules) SessionOption {
	return func(s *Session) {
		s.rules = rules
	}
}

// NewSession restores state from the gateway and starts at the main
// menu. The clock seeds the RNG unless WithSeed overrides it.
func NewSession(gateway store.Gateway, clock quartz.Clock, logger *log.Logger, opts ...SessionOption) *Session {
	s := &Session{
		rules:   DefaultRules(),
		phase:   PhaseMainMenu,
		rng:     randutil.New(clock.Now().UnixNano()),
		gateway: gateway,
		logger:  logger.WithPrefix("game"),
	}
	for _, opt := range opts {
		opt(s)
	}

	snap := gateway.Load()
	s.wallet.Balance = snap.Balance
	s.inv = shop.Restore(snap.OwnedWallpapers, snap.CurrentWallpaper)

	s.logger.Info("Session restored",
		"balance", s.wallet.Balance,
		"wallpaper", s.inv.Current)
	return s
}

// Phase returns the current screen
func (s *Session) Phase() Phase { return s.phase }

// Wallet returns a copy of the wallet
func (s *Session) Wallet() Wallet { return s.wallet }

// Inventory returns a copy of the cosmetic inventory
func (s *Session) Inventory() shop.Inventory { return s.inv }

// Round returns the active round, nil outside of play
func (s *Session) Round() *Round { return s.round }

// Rules returns the table rules
func (s *Session) Rules() Rules { return s.rules }

// Message returns the last routine feedback message
func (s *Session) Message() string { return s.message }

// Apply routes a user action through the transition table. It returns
// ErrInvalidAction for actions the current phase does not permit and a
// wrapped deck error for the unrecoverable exhaustion case; routine
// refusals (insufficient balance, bad card format) are reported via
// Message, not errors.
func (s *Session) Apply(action Action) error {
	if !s.phase.permits(action.kind()) {
		return fmt.Errorf("%w: %T in %s", ErrInvalidAction, action, s.phase)
	}

	switch act := action.(type) {
	case OpenLobby:
		s.message = ""
		s.phase = PhaseLobby
	case OpenPurchase:
		s.message = ""
		s.phase = PhasePurchase
	case OpenWallpapers:
		s.message = ""
		s.phase = PhaseWallpaper
	case EnterTable:
		s.startRound()
	case Bet:
		return s.placeBet(act.Amount)
	case Hit:
		if err := s.round.HitPlayer(); err != nil {
			return err
		}
		s.logger.Debug("Player hits", "hand", s.round.Player, "score", s.round.Player.Score())
	case Stand:
		return s.stand()
	case PlayAgain:
		s.playAgain()
	case BuyCurrency:
		s.buyCurrency(act)
	case BuyWallpaper:
		s.buyWallpaper(act.ID)
	case SelectWallpaper:
		s.selectWallpaper(act.ID)
	case ResetGame:
		s.resetGame()
	case BackToMenu:
		s.round = nil
		s.message = ""
		s.phase = PhaseMainMenu
		s.save()
	case Quit:
		s.save()
	}
	return nil
}

func (s *Session) startRound() {
	s.round = NewRound(s.rng)
	s.message = ""
	s.phase = PhaseBetting
	s.logger.Info("Round started", "balance", s.wallet.Balance)
}

// placeBet debits a chip and adds it to the round's bet. The first chip
// also deals the opening hands and moves play to the player's turn.
// Further chips during play raise the stake mid-round.
func (s *Session) placeBet(amount int) error {
	if !s.wallet.PlaceBet(amount) {
		s.message = "Insufficient balance!"
		return nil
	}
	s.round.Bet += amount
	s.message = ""
	s.save()

	if s.phase == PhaseBetting {
		if err := s.round.DealInitial(); err != nil {
			return err
		}
		s.phase = PhasePlaying
		s.logger.Info("Opening deal",
			"bet", s.round.Bet,
			"player", s.round.Player,
			"dealer_up", s.round.Dealer[0])
	}
	return nil
}

func (s *Session) stand() error {
	if err := s.round.PlayDealer(); err != nil {
		return err
	}
	outcome := s.round.Resolve(&s.wallet)
	s.phase = PhaseResult
	s.save()

	s.logger.Info("Round resolved",
		"outcome", outcome,
		"player", s.round.Player.Score(),
		"dealer", s.round.Dealer.Score(),
		"balance", s.wallet.Balance)
	return nil
}

func (s *Session) playAgain() {
	if s.wallet.Balance <= 0 {
		s.round = nil
		s.phase = PhaseGameOver
		s.logger.Info("Bankrupt", "stats", s.wallet.Stats)
		return
	}
	s.startRound()
}

func (s *Session) buyCurrency(act BuyCurrency) {
	ok, reason := payment.Validate(act.CardNumber, act.Expiry, act.CVV)
	if !ok {
		s.message = reason
		return
	}
	s.wallet.Credit(act.Amount)
	s.message = fmt.Sprintf("Transaction of $%d completed successfully!", act.Amount)
	s.save()
	s.logger.Info("Simulated top-up", "amount", act.Amount, "balance", s.wallet.Balance)
}

func (s *Session) buyWallpaper(id string) {
	item, ok := shop.ItemByID(id)
	if !ok {
		s.message = "Unknown wallpaper!"
		return
	}
	if s.inv.Owns(id) {
		s.message = "Already owned!"
		return
	}
	if s.wallet.Balance < item.Price {
		s.message = "Insufficient balance!"
		return
	}
	s.wallet.Balance -= item.Price
	s.inv.Add(id)
	s.message = ""
	s.save()
	s.logger.Info("Wallpaper purchased", "id", id, "price", item.Price)
}

func (s *Session) selectWallpaper(id string) {
	if !s.inv.Select(id) {
		s.message = "Wallpaper not owned!"
		return
	}
	s.message = ""
	s.save()
}

func (s *Session) resetGame() {
	s.wallet.Reset(s.rules.StartingStake)
	s.round = nil
	s.message = ""
	s.phase = PhaseMainMenu
	s.save()
	s.logger.Info("Game reset", "balance", s.wallet.Balance)
}

// save writes the snapshot through the gateway. A failed write is
// logged and play continues; the next mutation retries naturally.
func (s *Session) save() {
	err := s.gateway.Save(store.Snapshot{
		Balance:          s.wallet.Balance,
		OwnedWallpapers:  s.inv.Owned,
		CurrentWallpaper: s.inv.Current,
	})
	if err != nil {
		s.logger.Error("Failed to save game state", "error", err)
	}
}
