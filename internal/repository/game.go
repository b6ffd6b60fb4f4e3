package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client      *redis.Client
	finishedTTL time.Duration
}

// NewGameRepository stores games as JSON. Finished games expire after
// finishedTTL; zero keeps them forever.
func NewGameRepository(client *redis.Client, finishedTTL time.Duration) GameRepository {
	return &dbGame{
		client:      client,
		finishedTTL: finishedTTL,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	var expiration time.Duration
	if game.IsOver() {
		expiration = that.finishedTTL
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if existingGame.Circuit == nil {
		existingGame.Circuit = quantum.NewCircuit()
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

func gameKey(id string) string {
	return "game:" + id
}
