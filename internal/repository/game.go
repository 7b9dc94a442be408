package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/kuba-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, game *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

// memGame keeps encoded records so stored games never share memory with callers.
type memGame struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewGameRepository() GameRepository {
	return &memGame{
		records: make(map[string][]byte),
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *memGame) CreateOrUpdate(ctx context.Context, id string, game *entity.GameState) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[gameKey(id)] = gameJSON

	return nil
}

func (that *memGame) GetByID(ctx context.Context, id string) (*entity.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.mu.RLock()
	response, ok := that.records[gameKey(id)]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	var existingGame entity.GameState
	if err := json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	key := gameKey(id)
	if _, ok := that.records[key]; !ok {
		return ErrGameNotFound
	}

	delete(that.records, key)

	return nil
}
