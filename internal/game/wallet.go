package game

// Stats tracks lifetime results across rounds
type Stats struct {
	Games  int
	Wins   int
	Losses int
	Pushes int
}

// record tallies a resolved outcome. Games increments exactly once per
// round alongside exactly one of the result counters.
func (s *Stats) record(o Outcome) {
	s.Games++
	switch {
	case o.PlayerWins():
		s.Wins++
	case o == Push:
		s.Pushes++
	default:
		s.Losses++
	}
}

// WinRate returns the fraction of rounds won, 0 if none played
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Wallet holds the player's balance and lifetime statistics
type Wallet struct {
	Balance int
	Stats   Stats
}

// PlaceBet debits amount from the balance. Returns false and leaves the
// wallet untouched when the balance cannot cover it; that is routine
// feedback for the UI, not an error.
func (w *Wallet) PlaceBet(amount int) bool {
	if amount <= 0 || amount > w.Balance {
		return false
	}
	w.Balance -= amount
	return true
}

// Credit adds amount to the balance. Used for payouts and simulated
// currency purchases, neither of which can fail for insufficient funds.
func (w *Wallet) Credit(amount int) {
	w.Balance += amount
}

// Reset restores the starting stake and zeroes all statistics. Only the
// explicit reset action after bankruptcy calls this.
func (w *Wallet) Reset(stake int) {
	w.Balance = stake
	w.Stats = Stats{}
}
