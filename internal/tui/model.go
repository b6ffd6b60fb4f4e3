package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/tictactoe"
)

const noCell = -1

var (
	errSelectEmptyCell = errors.New("select an empty cell first")
	errEntangleSelf    = errors.New("cannot entangle a cell with itself")
)

// Model is the terminal UI for one local game. It owns cursor and entangle
// selection state; every rule is delegated to the tictactoe package.
type Model struct {
	game      *entity.Game
	simulator quantum.Simulator
	logger    *slog.Logger

	cursor            int
	firstEntangleCell int
	err               error

	keys keyMap
	help help.Model
}

func New(logger *slog.Logger, simulator quantum.Simulator) Model {
	return Model{
		game:      entity.NewGame(uuid.NewString()),
		simulator: simulator,
		logger:    logger.With("component", "tui"),

		cursor:            4,
		firstEntangleCell: noCell,

		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Game returns the game being played.
func (m Model) Game() *entity.Game { return m.game }

func (m Model) Cursor() int { return m.cursor }

// FirstEntangleCell returns the pending entangle selection, or -1.
func (m Model) FirstEntangleCell() int { return m.firstEntangleCell }

func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Cancel):
		m.firstEntangleCell = noCell
		m.err = nil
	case key.Matches(msg, m.keys.Classical):
		m.play(entity.Move{Type: entity.MoveClassical, Cell: m.cursor})
	case key.Matches(msg, m.keys.Superposition):
		m.play(entity.Move{Type: entity.MoveSuperposition, Cell: m.cursor})
	case key.Matches(msg, m.keys.Entangle):
		m.entangle()
	case key.Matches(msg, m.keys.Measure):
		m.measure()
	case key.Matches(msg, m.keys.NewGame):
		m.game = entity.NewGame(uuid.NewString())
		m.firstEntangleCell = noCell
		m.err = nil
	}

	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	row := (m.cursor/3 + dRow + 3) % 3
	col := (m.cursor%3 + dCol + 3) % 3
	m.cursor = row*3 + col
}

// entangle either starts a selection on the cursor cell or commits it.
func (m *Model) entangle() {
	if m.firstEntangleCell == noCell {
		if m.game.IsOver() || !m.game.State.Board[m.cursor].IsEmpty() {
			m.err = errSelectEmptyCell
			return
		}

		m.firstEntangleCell = m.cursor
		m.err = nil
		m.logger.Debug("preparing to entangle", "cell", m.cursor)

		return
	}

	if m.cursor == m.firstEntangleCell {
		m.err = errEntangleSelf
		return
	}

	m.play(entity.Move{Type: entity.MoveEntangle, Cell: m.firstEntangleCell, Target: m.cursor})
}

func (m *Model) play(move entity.Move) {
	player := m.game.State.Turn

	if err := tictactoe.ApplyMove(m.game, move); err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.firstEntangleCell = noCell
	m.logger.Debug("move applied", "player", player, "move", move.String())
}

func (m *Model) measure() {
	if err := tictactoe.Measure(m.game, m.simulator); err != nil {
		m.err = fmt.Errorf("measurement: %w", err)
		return
	}

	m.err = nil
	m.firstEntangleCell = noCell
	m.logger.Debug("board measured", "measurement", m.game.State.Measurement)
}
