// Package tui renders the game with Bubble Tea. It is a thin input and
// presentation layer: every key press maps to a tagged game.Action and
// all state lives in the session.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/shop"
)

const (
	inputCard = iota
	inputExpiry
	inputCVV
	inputCount
)

// Model is the Bubble Tea model wrapping a game session
type Model struct {
	session *game.Session
	logger  *log.Logger

	// purchase form
	inputs   []textinput.Model
	focused  int
	topupIdx int

	// wallpaper shop cursor
	shopCursor int

	width    int
	height   int
	quitting bool
	fatalErr error
}

// New creates a TUI model around the session
func New(session *game.Session, logger *log.Logger) *Model {
	card := textinput.New()
	card.Placeholder = "4111111111111111"
	card.CharLimit = 16
	card.Width = 20
	card.Prompt = "Card number: "
	card.Focus()

	expiry := textinput.New()
	expiry.Placeholder = "MM/YY"
	expiry.CharLimit = 5
	expiry.Width = 8
	expiry.Prompt = "Expiry:      "

	cvv := textinput.New()
	cvv.Placeholder = "123"
	cvv.CharLimit = 3
	cvv.Width = 5
	cvv.Prompt = "CVV:         "

	return &Model{
		session: session,
		logger:  logger.WithPrefix("tui"),
		inputs:  []textinput.Model{card, expiry, cvv},
	}
}

// Err returns the fatal error that ended the program, if any
func (m *Model) Err() error {
	return m.fatalErr
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.apply(game.Quit{})
	m.quitting = true
	return m, tea.Quit
}

// apply routes an action into the session. Invalid-action errors are
// only ever a key mapping bug and get logged; anything else is the
// fatal deck-exhaustion case and ends the program.
func (m *Model) apply(action game.Action) tea.Cmd {
	if err := m.session.Apply(action); err != nil {
		if errors.Is(err, game.ErrInvalidAction) {
			m.logger.Warn("Ignoring action", "action", fmt.Sprintf("%T", action), "error", err)
			return nil
		}
		m.logger.Error("Fatal game error", "error", err)
		m.fatalErr = err
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Phase() {
	case game.PhaseMainMenu:
		return m.handleMenuKey(msg)
	case game.PhaseLobby:
		return m.handleLobbyKey(msg)
	case game.PhaseBetting, game.PhasePlaying:
		return m.handleTableKey(msg)
	case game.PhaseResult:
		return m.handleResultKey(msg)
	case game.PhaseGameOver:
		return m.handleGameOverKey(msg)
	case game.PhasePurchase:
		return m.handlePurchaseKey(msg)
	case game.PhaseWallpaper:
		return m.handleWallpaperKey(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter":
		return m, m.apply(game.OpenLobby{})
	case "b":
		m.resetPurchaseForm()
		return m, m.apply(game.OpenPurchase{})
	case "w":
		m.shopCursor = 0
		return m, m.apply(game.OpenWallpapers{})
	case "q", "esc":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleLobbyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "s":
		return m, m.apply(game.EnterTable{})
	case "q", "esc":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chips := m.session.Rules().ChipDenoms
	switch msg.String() {
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(chips) {
			return m, m.apply(game.Bet{Amount: chips[idx]})
		}
	case "h", " ":
		if m.session.Phase() == game.PhasePlaying {
			return m, m.apply(game.Hit{})
		}
	case "s", "enter":
		if m.session.Phase() == game.PhasePlaying {
			return m, m.apply(game.Stand{})
		}
	case "m", "esc":
		return m, m.apply(game.BackToMenu{})
	}
	return m, nil
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p", "enter":
		return m, m.apply(game.PlayAgain{})
	case "m", "esc":
		return m, m.apply(game.BackToMenu{})
	}
	return m, nil
}

func (m *Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m, m.apply(game.ResetGame{})
	case "q", "esc":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handlePurchaseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	amounts := m.session.Rules().TopUpDenoms
	switch msg.String() {
	case "esc":
		return m, m.apply(game.BackToMenu{})
	case "tab", "down":
		m.setFocus((m.focused + 1) % inputCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focused + inputCount - 1) % inputCount)
		return m, nil
	case "left":
		if m.topupIdx > 0 {
			m.topupIdx--
		}
		return m, nil
	case "right":
		if m.topupIdx < len(amounts)-1 {
			m.topupIdx++
		}
		return m, nil
	case "enter":
		cmd := m.apply(game.BuyCurrency{
			Amount:     amounts[m.topupIdx],
			CardNumber: m.inputs[inputCard].Value(),
			Expiry:     m.inputs[inputExpiry].Value(),
			CVV:        m.inputs[inputCVV].Value(),
		})
		if m.session.Message() == fmt.Sprintf("Transaction of $%d completed successfully!", amounts[m.topupIdx]) {
			m.resetPurchaseForm()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) handleWallpaperKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := shop.Catalog()
	switch msg.String() {
	case "esc", "m":
		return m, m.apply(game.BackToMenu{})
	case "up", "k":
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case "down", "j":
		if m.shopCursor < len(items)-1 {
			m.shopCursor++
		}
	case "enter":
		item := items[m.shopCursor]
		if m.session.Inventory().Owns(item.ID) {
			return m, m.apply(game.SelectWallpaper{ID: item.ID})
		}
		return m, m.apply(game.BuyWallpaper{ID: item.ID})
	}
	return m, nil
}

func (m *Model) setFocus(idx int) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
}

func (m *Model) resetPurchaseForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focused = inputCard
	m.inputs[inputCard].Focus()
	m.topupIdx = 0
}
