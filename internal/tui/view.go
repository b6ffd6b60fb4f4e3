package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quantum Tic-Tac-Toe"))
	sb.WriteString("\n\n")
	sb.WriteString(boardStyle.Render(m.renderBoard()))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderBoard() string {
	rows := make([]string, 0, 5)
	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			cells = append(cells, m.renderCell(row*3+col))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[0], dimStyle.Render("│"), cells[1], dimStyle.Render("│"), cells[2]))
		if row < 2 {
			rows = append(rows, dimStyle.Render(strings.Repeat("─", cellWidth*3+2)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(i int) string {
	cell := m.game.State.Board[i]

	var symbol string
	switch cell.Kind() {
	case entity.CellClassical:
		symbol = markStyle.Render(cell.String())
	case entity.CellSuperposed:
		symbol = superposedStyle.Render(cell.String())
	case entity.CellEntangled:
		symbol = entangledStyle.Render(cell.String())
	default:
		symbol = dimStyle.Render(strconv.Itoa(i))
	}

	switch {
	case i == m.firstEntangleCell:
		return selectedStyle.Render(symbol)
	case i == m.cursor && !m.game.IsOver():
		return cursorStyle.Render(symbol)
	default:
		return cellStyle.Render(symbol)
	}
}

func (m Model) renderStatus() string {
	state := m.game.State

	first := "None"
	if m.firstEntangleCell != noCell {
		first = strconv.Itoa(m.firstEntangleCell)
	}

	lines := []string{
		fmt.Sprintf("Player Turn: %s", state.Turn),
		fmt.Sprintf("Move Count: %d", state.MoveCount),
		fmt.Sprintf("Selected: %d", m.cursor),
		fmt.Sprintf("Entangling: %t", m.firstEntangleCell != noCell),
		fmt.Sprintf("First Cell: %s", first),
	}

	var sb strings.Builder
	sb.WriteString(statusStyle.Render(strings.Join(lines, "\n")))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}

	if state.GameOver {
		sb.WriteString(gameOverStyle.Render("Game Over"))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  measured %s", state.Measurement)))
		sb.WriteString("\n")

		for _, line := range entity.EvaluateLines(state.Board) {
			sb.WriteString(fmt.Sprintf("%s completes %v\n", line.Mark, line.Cells))
		}
	}

	return sb.String()
}
