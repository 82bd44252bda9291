package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

var errQuit = errors.New("player quit")

type gameManager interface {
	StartGame(ctx context.Context) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, row, col int) (*entity.Game, tictactoe.MoveResult, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error
}

// Server is the hot-seat presentation layer: two players share one terminal.
type Server struct {
	logger      *slog.Logger
	gameManager gameManager

	in  io.Reader
	out *bufio.Writer

	drawResetDelay time.Duration
}

func New(logger *slog.Logger, gameManager gameManager, in io.Reader, out io.Writer, drawResetDelay time.Duration) *Server {
	return &Server{
		logger:         logger.With("component", "console"),
		gameManager:    gameManager,
		in:             in,
		out:            bufio.NewWriter(out),
		drawResetDelay: drawResetDelay,
	}
}

// Start runs one session until the input ends, the player quits or ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	// stops the input reader once the session is over
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game, err := that.gameManager.StartGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log = log.With("gameID", game.ID)

	defer func() {
		// the session may outlive ctx, so the cleanup gets its own
		if err := that.gameManager.EndGame(context.WithoutCancel(ctx), game.ID); err != nil {
			log.Error("failed to end game", "error", err)
		}
	}()

	that.printf("Tic Tac Toe\n")
	that.writeHelp()
	that.writeGame(game)

	if err = that.flush(); err != nil {
		return err
	}

	lines := that.readLines(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, closing console")
			return nil
		case line, ok := <-lines:
			if !ok {
				log.Info("input closed")
				return nil
			}

			game, err = that.processMessage(ctx, game, line)
			if errors.Is(err, errQuit) {
				return that.flush()
			}

			if err != nil {
				return err
			}

			if err = that.flush(); err != nil {
				return err
			}
		}
	}
}

func (that *Server) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Server) flush() error {
	if err := that.out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Server) printf(format string, args ...any) {
	// write errors surface on flush
	_, _ = fmt.Fprintf(that.out, format, args...)
}
