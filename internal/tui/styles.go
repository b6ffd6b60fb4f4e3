package tui

import "github.com/charmbracelet/lipgloss"

const cellWidth = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	cursorStyle = cellStyle.
			Background(lipgloss.Color("#3b4261"))

	selectedStyle = cellStyle.
			Background(lipgloss.Color("#bb9af7")).
			Foreground(lipgloss.Color("#1a1b26"))

	markStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c0caf5"))

	superposedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00bfff"))

	entangledStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#b048b0"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0af68"))
)
