package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/repository"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, game *entity.Game, finishedAt time.Time) error
	GetByGameID(ctx context.Context, gameID string) (*repository.Result, error)
}

// GameManager loads a game, runs the engine on it and stores it back.
// Calls for the same game are serialized; rejected moves store nothing.
// Locks are held only for games that exist and are still being played.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	resultRepo resultRepo
	simulator  quantum.Simulator

	now   func() time.Time
	locks sync.Map // game id -> *sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, resultRepo resultRepo, simulator quantum.Simulator) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		simulator:  simulator,

		now: time.Now,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) MakeMove(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id)

	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		that.forgetIfMissing(id, err)
		return nil, err
	}

	if game.IsOver() {
		that.locks.Delete(id)
	}

	player := game.State.Turn
	if err = tictactoe.ApplyMove(game, move); err != nil {
		log.Debug("move rejected", "player", player, "move", move.String(), "error", err)
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("move applied",
		"player", player,
		"move_type", move.Type,
		"cell", move.Cell,
		"target", move.Target,
		"move_count", game.State.MoveCount,
	)

	return game, nil
}

func (that *GameManager) Measure(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "Measure", "gameID", id)

	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		that.forgetIfMissing(id, err)
		return nil, err
	}

	if game.IsOver() {
		that.locks.Delete(id)
	}

	if err = tictactoe.Measure(game, that.simulator); err != nil {
		log.Warn("measurement failed", "error", err)
		return nil, fmt.Errorf("failed to measure: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	// the game itself is already stored, a lost archive row is only logged
	if err = that.resultRepo.Save(ctx, game, that.now()); err != nil {
		log.Error("failed to archive result", "error", err)
	}

	// a finished game is never written again, so it needs no lock
	that.locks.Delete(id)

	log.Debug("board measured",
		"measurement", game.State.Measurement,
		"operations", game.Circuit.Len(),
		"lines", len(entity.EvaluateLines(game.State.Board)),
	)

	return game, nil
}

func (that *GameManager) GetResult(ctx context.Context, gameID string) (*repository.Result, error) {
	result, err := that.resultRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

// DeleteGame removes a game from live storage; its archived result is kept.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.locks.Delete(id)
	that.logger.Info("game deleted", "gameID", id)

	return nil
}

// forgetIfMissing drops the lock of an id that has no stored game.
func (that *GameManager) forgetIfMissing(id string, err error) {
	if errors.Is(err, repository.ErrGameNotFound) {
		that.locks.Delete(id)
	}
}

func (that *GameManager) lock(id string) func() {
	mu, _ := that.locks.LoadOrStore(id, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()

	return m.Unlock
}
