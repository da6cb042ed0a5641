package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack-cli/internal/shop"
)

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	GoldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	HiddenCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

// wallpaperColors maps each cosmetic wallpaper to the border colour of
// the table frame. Purely visual; unknown ids fall back to the default
// felt.
var wallpaperColors = map[string]lipgloss.Color{
	shop.DefaultWallpaper: lipgloss.Color("#00A550"),
	"wood":                lipgloss.Color("#8B5A2B"),
	"marble":              lipgloss.Color("#C77DFF"),
}

// frameStyle returns the bordered table frame tinted by the active
// wallpaper
func frameStyle(wallpaper string) lipgloss.Style {
	color, ok := wallpaperColors[wallpaper]
	if !ok {
		color = wallpaperColors[shop.DefaultWallpaper]
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 3)
}
