package game

// Outcome represents the resolution of a single round
type Outcome int

const (
	OutcomeNone Outcome = iota
	PlayerBust
	DealerBust
	PlayerHigher
	DealerHigher
	Push
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "PlayerBust"
	case DealerBust:
		return "DealerBust"
	case PlayerHigher:
		return "PlayerHigher"
	case DealerHigher:
		return "DealerHigher"
	case Push:
		return "Push"
	default:
		return "None"
	}
}

// PlayerWins returns true if the outcome pays the player
func (o Outcome) PlayerWins() bool {
	return o == DealerBust || o == PlayerHigher
}

// Payout returns the multiple of the bet credited back to the balance.
// The bet was debited when placed, so a win pays 2x and a push returns
// the bet itself.
func (o Outcome) Payout() int {
	switch {
	case o.PlayerWins():
		return 2
	case o == Push:
		return 1
	default:
		return 0
	}
}

// Message returns the banner shown to the player
func (o Outcome) Message() string {
	switch {
	case o.PlayerWins():
		return "Player wins!"
	case o == Push:
		return "Push!"
	case o == OutcomeNone:
		return ""
	default:
		return "Dealer wins!"
	}
}
