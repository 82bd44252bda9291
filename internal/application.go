package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, gameRepo)

	return Run(ctx, logger, conf, gameManager, os.Stdin, os.Stdout)
}

// Run plays console sessions over in and out until the input ends or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, gameManager *usecase.GameManager, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	log.Info("Starting console", "storage", conf.Storage.Type, "drawResetDelay", conf.DrawResetDelay)

	consoleServer := console.New(logger, gameManager, in, out, conf.DrawResetDelay)
	if err := consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage.Type != config.StorageRedis {
		return repository.NewInMemoryGameRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Storage.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage, conf.Storage.SessionTTL), redisStorage.Close, nil
}
