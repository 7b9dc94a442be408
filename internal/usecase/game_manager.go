package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/kuba-backend/internal/entity"
	"github.com/rocketscienceinc/kuba-backend/internal/kuba"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - loads a game, runs one operation on it and stores the result.
// Operations are serialized, so a game is never touched by two callers at once.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, playerA, playerB entity.Player) (string, *entity.GameState, error) {
	log := that.logger.With("method", "CreateGame")

	game, err := kuba.New(playerA, playerB)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create game: %w", err)
	}

	gameID := uuid.NewString()
	state := game.State()

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.updateGame(ctx, gameID, &state); err != nil {
		return "", nil, err
	}

	log.Info("game created", "gameID", gameID, "playerA", playerA.Name, "playerB", playerB.Name)

	return gameID, &state, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getGameByID(ctx, gameID)
}

// MakeMove - applies the move to the stored game. A rejected move returns the unchanged state together
// with the rejection error, and nothing is stored.
func (that *GameManager) MakeMove(ctx context.Context, gameID string, move entity.Move) (*entity.GameState, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID, "player", move.Player)

	that.mu.Lock()
	defer that.mu.Unlock()

	state, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game, err := kuba.Restore(*state)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	if err = game.MakeMove(move.Player, move.Coordinate, move.Direction); err != nil {
		log.Debug("move rejected", "row", move.Coordinate.Row, "col", move.Coordinate.Col,
			"direction", move.Direction, "reason", err)

		return state, fmt.Errorf("failed to make move: %w", err)
	}

	next := game.State()
	if err = that.updateGame(ctx, gameID, &next); err != nil {
		return nil, err
	}

	log.Debug("move applied", "row", move.Coordinate.Row, "col", move.Coordinate.Col,
		"direction", move.Direction, "captured", next.Captured[move.Player])

	if next.IsFinished() {
		log.Info("game finished", "winner", next.Winner)
	}

	return &next, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "DeleteGame", "gameID", gameID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.GameState, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, id string, game *entity.GameState) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, id, game); err != nil {
		that.logger.Error("failed to store game", "gameID", id, "error", err)
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
