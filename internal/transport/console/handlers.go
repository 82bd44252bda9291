package console

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const helpText = `Commands:
  <row> <col>       place your mark, rows and columns are 0, 1 or 2
  move <row> <col>  same as above
  reset             clear the board
  help              show this help
  quit              leave the game
`

func (that *Server) processMessage(ctx context.Context, game *entity.Game, line string) (*entity.Game, error) {
	msg, err := ParseMessage(line)
	if err != nil {
		that.printf("error: %v\n", err)
		return game, nil
	}

	switch msg.Action {
	case actionMove:
		return that.handleMove(ctx, game, msg.Cell)
	case actionReset:
		return that.handleReset(ctx, game)
	case actionHelp:
		that.writeHelp()
		return game, nil
	case actionQuit, actionExit:
		that.printf("Bye!\n")
		return game, errQuit
	default:
		that.printf("error: unknown action %q\n", msg.Action)
		return game, nil
	}
}

func (that *Server) handleMove(ctx context.Context, game *entity.Game, cell entity.Cell) (*entity.Game, error) {
	log := that.logger.With("method", "handleMove", "gameID", game.ID)

	updated, result, err := that.gameManager.MakeMove(ctx, game.ID, cell.Row, cell.Col)
	if err != nil {
		return game, fmt.Errorf("failed to make move: %w", err)
	}

	// occupied cells are ignored silently
	if !result.Accepted {
		log.Debug("move ignored", "row", cell.Row, "col", cell.Col)
		return updated, nil
	}

	switch result.Outcome.Status {
	case entity.StatusWon:
		that.writeBoard(updated)
		that.printf("Game over: %s wins!\n", result.Outcome.Winner)

		return that.handleReset(ctx, updated)
	case entity.StatusDrawn:
		that.writeBoard(updated)
		that.printf("Game over: it's a draw!\n")

		// keep the drawn board on screen for a moment before clearing it
		if err = that.flush(); err != nil {
			return updated, err
		}

		if !that.wait(ctx, that.drawResetDelay) {
			return updated, nil
		}

		return that.handleReset(ctx, updated)
	case entity.StatusOngoing:
	}

	that.writeGame(updated)

	return updated, nil
}

func (that *Server) handleReset(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	fresh, err := that.gameManager.ResetGame(ctx, game.ID)
	if err != nil {
		return game, fmt.Errorf("failed to reset game: %w", err)
	}

	that.printf("New game.\n")
	that.writeGame(fresh)

	return fresh, nil
}

// wait reports false when ctx ends first.
func (that *Server) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return true
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (that *Server) writeBoard(game *entity.Game) {
	that.printf("%s\n", game.Board.String())
}

func (that *Server) writeGame(game *entity.Game) {
	that.writeBoard(game)
	that.printf("Current player: %s\n", game.Turn)
}

func (that *Server) writeHelp() {
	that.printf("%s", helpText)
}
