package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/repository"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	MakeMove(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Measure(ctx context.Context, id string) (*entity.Game, error)

	GetResult(ctx context.Context, gameID string) (*repository.Result, error)
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func newHandlers(logger *slog.Logger, gameUseCase gameUseCase) *handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

// GameResponse is the presentation view of a game.
type GameResponse struct {
	ID          string        `json:"id"`
	Board       entity.Board  `json:"board"`
	Turn        entity.Mark   `json:"turn"`
	MoveCount   int           `json:"move_count"`
	GameOver    bool          `json:"game_over"`
	Measurement string        `json:"measurement,omitempty"`
	Operations  []string      `json:"operations"`
	Lines       []entity.Line `json:"lines"`
}

// moveRequest keeps cell and target optional so a missing field is not read as cell 0.
type moveRequest struct {
	Type   entity.MoveType `json:"type"`
	Cell   *int            `json:"cell"`
	Target *int            `json:"target"`
}

func (that moveRequest) toMove() (entity.Move, error) {
	if that.Cell == nil {
		return entity.Move{}, fmt.Errorf("%w: cell is required", apperror.ErrIllegalMove)
	}

	move := entity.Move{Type: that.Type, Cell: *that.Cell}

	if that.Type == entity.MoveEntangle {
		if that.Target == nil {
			return entity.Move{}, fmt.Errorf("%w: target is required for entangle", apperror.ErrIllegalMove)
		}
		move.Target = *that.Target
	}

	return move, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(game *entity.Game) GameResponse {
	ops := game.Circuit.Operations()
	operations := make([]string, 0, len(ops))
	for _, op := range ops {
		operations = append(operations, op.String())
	}

	return GameResponse{
		ID:          game.ID,
		Board:       game.State.Board,
		Turn:        game.State.Turn,
		MoveCount:   game.State.MoveCount,
		GameOver:    game.State.GameOver,
		Measurement: game.State.Measurement,
		Operations:  operations,
		Lines:       entity.EvaluateLines(game.State.Board),
	}
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.NewGame(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameUseCase.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid move payload"})
		return
	}

	move, err := req.toMove()
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gameUseCase.MakeMove(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) Measure(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.Measure(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) GetQASM(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(game.Circuit.ToQASM())); err != nil {
		that.logger.Error("failed to write qasm", "error", err)
	}
}

func (that *handlers) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := that.gameUseCase.GetResult(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor - maps error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound), errors.Is(err, repository.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrInvalidQubit),
		errors.Is(err, apperror.ErrSameQubit),
		errors.Is(err, apperror.ErrInvalidCell):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrSimulationFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
