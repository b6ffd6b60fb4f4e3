package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
)

var (
	ErrResultNotFound = errors.New("result not found")
	ErrGameNotOver    = errors.New("game is not over")
)

// Result is the archived outcome of a measured game.
type Result struct {
	GameID      string        `json:"game_id"`
	Board       entity.Board  `json:"board"`
	Measurement string        `json:"measurement"`
	MoveCount   int           `json:"move_count"`
	QASM        string        `json:"qasm"`
	Lines       []entity.Line `json:"lines"`
	FinishedAt  time.Time     `json:"finished_at"`
}

type ResultRepository interface {
	Save(ctx context.Context, game *entity.Game, finishedAt time.Time) error
	GetByGameID(ctx context.Context, gameID string) (*Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, game *entity.Game, finishedAt time.Time) error {
	if !game.IsOver() {
		return fmt.Errorf("%w: %s", ErrGameNotOver, game.ID)
	}

	query := `INSERT OR REPLACE INTO results (game_id, board, measurement, move_count, qasm, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		game.ID,
		encodeBoard(game.State.Board),
		game.State.Measurement,
		game.State.MoveCount,
		game.Circuit.ToQASM(),
		finishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *resultRepository) GetByGameID(ctx context.Context, gameID string) (*Result, error) {
	query := `SELECT game_id, board, measurement, move_count, qasm, finished_at FROM results WHERE game_id = ?`

	var (
		result Result
		board  string
	)

	err := that.conn.QueryRowContext(ctx, query, gameID).
		Scan(&result.GameID, &board, &result.Measurement, &result.MoveCount, &result.QASM, &result.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find result: %w", err)
	}

	result.Board, err = decodeBoard(board)
	if err != nil {
		return nil, fmt.Errorf("can't decode board: %w", err)
	}

	result.Lines = entity.EvaluateLines(result.Board)

	return &result, nil
}

// encodeBoard stores one symbol per cell, "." for empty.
func encodeBoard(board entity.Board) string {
	var sb strings.Builder
	for _, cell := range board {
		if cell.IsEmpty() {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

func decodeBoard(encoded string) (entity.Board, error) {
	var board entity.Board
	if len(encoded) != entity.BoardSize {
		return board, fmt.Errorf("%w: %q", entity.ErrInvalidCellValue, encoded)
	}

	for i := range entity.BoardSize {
		symbol := encoded[i : i+1]
		if symbol == "." {
			continue
		}
		if err := board[i].UnmarshalText([]byte(symbol)); err != nil {
			return board, err
		}
	}

	return board, nil
}
