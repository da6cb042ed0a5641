package game

// Phase represents the current screen of the game flow
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseLobby
	PhaseBetting
	PhasePlaying
	PhaseResult
	PhaseGameOver
	PhasePurchase
	PhaseWallpaper
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhaseLobby:
		return "Lobby"
	case PhaseBetting:
		return "Betting"
	case PhasePlaying:
		return "Playing"
	case PhaseResult:
		return "Result"
	case PhaseGameOver:
		return "GameOver"
	case PhasePurchase:
		return "Purchase"
	case PhaseWallpaper:
		return "Wallpaper"
	default:
		return "Unknown"
	}
}

// allowed is the transition table: which action kinds are legal in which
// phase. Session.Apply rejects anything not listed here before touching
// state.
var allowed = map[Phase][]actionKind{
	PhaseMainMenu:  {kindOpenLobby, kindOpenPurchase, kindOpenWallpapers, kindQuit},
	PhaseLobby:     {kindEnterTable, kindQuit},
	PhaseBetting:   {kindBet, kindBackToMenu, kindQuit},
	PhasePlaying:   {kindBet, kindHit, kindStand, kindBackToMenu, kindQuit},
	PhaseResult:    {kindPlayAgain, kindBackToMenu, kindQuit},
	PhaseGameOver:  {kindResetGame, kindQuit},
	PhasePurchase:  {kindBuyCurrency, kindBackToMenu, kindQuit},
	PhaseWallpaper: {kindBuyWallpaper, kindSelectWallpaper, kindBackToMenu, kindQuit},
}

// permits returns true if the action kind is legal in this phase
func (p Phase) permits(k actionKind) bool {
	for _, a := range allowed[p] {
		if a == k {
			return true
		}
	}
	return false
}
