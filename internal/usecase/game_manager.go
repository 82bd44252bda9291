package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs the engine against games kept in a repository.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

func (that *GameManager) StartGame(ctx context.Context) (*entity.Game, error) {
	game := tictactoe.NewGame()
	game.ID = pkg.GenerateGameID()

	if err := that.gameRepo.CreateOrUpdate(ctx, &game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID)

	return &game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeMove applies a move for whoever's turn it is. A rejected move is returned
// with Accepted false and nothing is written.
func (that *GameManager) MakeMove(ctx context.Context, id string, row, col int) (*entity.Game, tictactoe.MoveResult, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, tictactoe.MoveResult{}, err
	}

	mark := game.Turn

	next, result := tictactoe.AttemptMove(*game, row, col)
	if !result.Accepted {
		log.Debug("move ignored", "row", row, "col", col)
		return game, result, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, &next); err != nil {
		return nil, tictactoe.MoveResult{}, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("move accepted", "mark", mark, "row", row, "col", col)

	switch result.Outcome.Status {
	case entity.StatusWon:
		log.Info("game won", "winner", result.Outcome.Winner)
	case entity.StatusDrawn:
		log.Info("game drawn")
	case entity.StatusOngoing:
	}

	return &next, result, nil
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	fresh := tictactoe.Reset(*game)
	if err = that.gameRepo.CreateOrUpdate(ctx, &fresh); err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	that.logger.Debug("game reset", "gameID", id)

	return &fresh, nil
}

func (that *GameManager) EndGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game ended", "gameID", id)

	return nil
}
