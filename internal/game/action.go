package game

type actionKind int

const (
	kindOpenLobby actionKind = iota
	kindOpenPurchase
	kindOpenWallpapers
	kindEnterTable
	kindBet
	kindHit
	kindStand
	kindPlayAgain
	kindBuyCurrency
	kindBuyWallpaper
	kindSelectWallpaper
	kindResetGame
	kindBackToMenu
	kindQuit
)

// Action is a tagged user input routed through Session.Apply. One type
// per user-facing control; no string matching on labels.
type Action interface {
	kind() actionKind
}

// OpenLobby moves from the main menu to the table welcome screen
type OpenLobby struct{}

// OpenPurchase opens the simulated currency purchase form
type OpenPurchase struct{}

// OpenWallpapers opens the wallpaper shop
type OpenWallpapers struct{}

// EnterTable starts a fresh round and moves to betting
type EnterTable struct{}

// Bet places a chip of the given denomination. Repeated bets within a
// round accumulate.
type Bet struct {
	Amount int
}

// Hit draws another card for the player
type Hit struct{}

// Stand ends the player's turn, plays the dealer and resolves
type Stand struct{}

// PlayAgain starts the next round, or ends the game at zero balance
type PlayAgain struct{}

// BuyCurrency is a simulated top-up backed by a format-only card check
type BuyCurrency struct {
	Amount     int
	CardNumber string
	Expiry     string
	CVV        string
}

// BuyWallpaper purchases a cosmetic and makes it active
type BuyWallpaper struct {
	ID string
}

// SelectWallpaper activates an already-owned cosmetic
type SelectWallpaper struct {
	ID string
}

// ResetGame restores the starting stake after bankruptcy
type ResetGame struct{}

// BackToMenu abandons the current screen and returns to the main menu
type BackToMenu struct{}

// Quit saves and exits
type Quit struct{}

func (OpenLobby) kind() actionKind       { return kindOpenLobby }
func (OpenPurchase) kind() actionKind    { return kindOpenPurchase }
func (OpenWallpapers) kind() actionKind  { return kindOpenWallpapers }
func (EnterTable) kind() actionKind      { return kindEnterTable }
func (Bet) kind() actionKind             { return kindBet }
func (Hit) kind() actionKind             { return kindHit }
func (Stand) kind() actionKind           { return kindStand }
func (PlayAgain) kind() actionKind       { return kindPlayAgain }
func (BuyCurrency) kind() actionKind     { return kindBuyCurrency }
func (BuyWallpaper) kind() actionKind    { return kindBuyWallpaper }
func (SelectWallpaper) kind() actionKind { return kindSelectWallpaper }
func (ResetGame) kind() actionKind       { return kindResetGame }
func (BackToMenu) kind() actionKind      { return kindBackToMenu }
func (Quit) kind() actionKind            { return kindQuit }
