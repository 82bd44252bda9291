package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// memGame keeps games in process memory. Games are copied in and out so callers
// never share a board with the store.
type memGame struct {
	lock  sync.RWMutex
	games map[string]entity.Game
}

func NewInMemoryGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.lock.Lock()
	defer that.lock.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.lock.RLock()
	defer that.lock.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return &entity.Game{}, apperror.ErrGameNotFound
	}

	return &game, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.lock.Lock()
	defer that.lock.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
