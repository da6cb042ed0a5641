package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/shop"
)

// View renders the current phase
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.session.Phase() {
	case game.PhaseMainMenu:
		content = m.viewMainMenu()
	case game.PhaseLobby:
		content = m.viewLobby()
	case game.PhaseBetting, game.PhasePlaying, game.PhaseResult:
		content = m.viewTable()
	case game.PhaseGameOver:
		content = m.viewGameOver()
	case game.PhasePurchase:
		content = m.viewPurchase()
	case game.PhaseWallpaper:
		content = m.viewWallpapers()
	}

	frame := frameStyle(m.session.Inventory().Current).Render(content)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}

func (m *Model) viewMainMenu() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(GoldStyle.Render(fmt.Sprintf("Balance: $%d", m.session.Wallet().Balance)))
	b.WriteString("\n\n")
	b.WriteString("[s] Start\n")
	b.WriteString("[b] Buy currency\n")
	b.WriteString("[w] Change wallpaper\n")
	b.WriteString("[q] Exit")
	return b.String()
}

func (m *Model) viewLobby() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString("Welcome to the Casino!\n\n")
	b.WriteString("[enter] Take a seat\n")
	b.WriteString("[q] Exit")
	return b.String()
}

func (m *Model) viewTable() string {
	round := m.session.Round()
	phase := m.session.Phase()

	var b strings.Builder

	// Dealer's second card stays hidden until the player stands; during
	// play the dealer score is withheld, never computed from a partial
	// hand.
	b.WriteString(InfoStyle.Render("Dealer"))
	if phase == game.PhasePlaying {
		b.WriteString("\n" + m.renderHiddenDealer(round.Dealer) + "\n")
		b.WriteString(InfoStyle.Render("Score: ?"))
	} else if len(round.Dealer) > 0 {
		b.WriteString("\n" + m.renderCards(round.Dealer) + "\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Score: %d", round.Dealer.Score())))
	} else {
		b.WriteString("\n" + HiddenCardStyle.Render("(waiting for bet)"))
	}

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Player"))
	if len(round.Player) > 0 {
		b.WriteString("\n" + m.renderCards(round.Player) + "\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Score: %d", round.Player.Score())))
	} else {
		b.WriteString("\n" + HiddenCardStyle.Render("(waiting for bet)"))
	}
	b.WriteString("\n\n")

	b.WriteString(GoldStyle.Render(fmt.Sprintf("Balance: $%d", m.session.Wallet().Balance)))
	b.WriteString("  ")
	b.WriteString(GoldStyle.Render(fmt.Sprintf("Bet: $%d", round.Bet)))
	b.WriteString("\n")

	if phase == game.PhaseResult {
		b.WriteString("\n")
		b.WriteString(SuccessStyle.Render(round.Outcome().Message()))
		b.WriteString("\n")
	}
	if msg := m.session.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.tableHelp(phase)))
	return b.String()
}

func (m *Model) tableHelp(phase game.Phase) string {
	chips := m.session.Rules().ChipDenoms
	var chipHelp []string
	for i, chip := range chips {
		chipHelp = append(chipHelp, fmt.Sprintf("[%d] $%d", i+1, chip))
	}

	switch phase {
	case game.PhaseBetting:
		return strings.Join(chipHelp, " ") + "  [m] menu"
	case game.PhasePlaying:
		return strings.Join(chipHelp, " ") + "  [h] hit  [s] stand  [m] menu"
	default:
		return "[p] play again  [m] menu"
	}
}

func (m *Model) renderCards(h game.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderHiddenDealer(h game.Hand) string {
	if len(h) == 0 {
		return ""
	}
	parts := []string{renderCard(h[0])}
	for range h[1:] {
		parts = append(parts, HiddenCardStyle.Render("[??]"))
	}
	return strings.Join(parts, " ")
}

func renderCard(c deck.Card) string {
	s := fmt.Sprintf("[%s]", c)
	if c.IsRed() {
		return RedCardStyle.Render(s)
	}
	return BlackCardStyle.Render(s)
}

func (m *Model) viewGameOver() string {
	stats := m.session.Wallet().Stats
	delta := m.session.Wallet().Balance - m.session.Rules().StartingStake

	var b strings.Builder
	b.WriteString(TitleStyle.Render(" Game Over! "))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Games: %d | Wins: %d | Losses: %d | Pushes: %d\n",
		stats.Games, stats.Wins, stats.Losses, stats.Pushes))
	b.WriteString(fmt.Sprintf("Balance change: %+d$\n\n", delta))
	b.WriteString("[r] Reset game\n")
	b.WriteString("[q] Exit")
	return b.String()
}

func (m *Model) viewPurchase() string {
	amounts := m.session.Rules().TopUpDenoms

	var b strings.Builder
	b.WriteString(TitleStyle.Render(" Buy Currency "))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\nAmount:  ")
	for i, amount := range amounts {
		label := fmt.Sprintf("$%d", amount)
		if i == m.topupIdx {
			b.WriteString(SelectedStyle.Render("▸" + label))
		} else {
			b.WriteString(InfoStyle.Render(" " + label))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if msg := m.session.Message(); msg != "" {
		b.WriteString("\n")
		if strings.Contains(msg, "successfully") {
			b.WriteString(SuccessStyle.Render(msg))
		} else {
			b.WriteString(ErrorStyle.Render(msg))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("[tab] next field  [←/→] amount  [enter] buy  [esc] back"))
	return b.String()
}

func (m *Model) viewWallpapers() string {
	inv := m.session.Inventory()

	var b strings.Builder
	b.WriteString(TitleStyle.Render(" Change Wallpaper "))
	b.WriteString("\n\n")
	b.WriteString(GoldStyle.Render(fmt.Sprintf("Balance: $%d", m.session.Wallet().Balance)))
	b.WriteString("\n\n")

	for i, item := range shop.Catalog() {
		status := fmt.Sprintf("$%d", item.Price)
		if inv.Owns(item.ID) {
			status = "Owned"
			if inv.Current == item.ID {
				status = "Active"
			}
		}

		line := fmt.Sprintf("%-10s %s", item.Name, status)
		if i == m.shopCursor {
			line = SelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if msg := m.session.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("[↑/↓] select  [enter] buy/apply  [esc] back"))
	return b.String()
}
