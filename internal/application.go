package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arena/internal/service"
	"github.com/rocketscienceinc/tictactoe-arena/transport/console"
	"github.com/rocketscienceinc/tictactoe-arena/transport/rest"
	"github.com/rocketscienceinc/tictactoe-arena/transport/websocket"
)

var ErrUnknownMode = errors.New("unknown application mode")

// RunApp wires the application and runs the front-end selected by the
// config: the interactive console, or the HTTP + WebSocket servers.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	statsService, closeStorage, err := buildStats(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up statistics: %w", err)
	}
	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	botService := service.NewBotService()

	switch conf.Mode {
	case config.ModeConsole:
		ui := console.New(logger, os.Stdin, os.Stdout, botService, statsService,
			time.Duration(conf.ThinkDelayMS)*time.Millisecond)
		return ui.Run(ctx)
	case config.ModeServer:
		return runServers(ctx, logger, conf, botService, statsService)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

// buildStats connects the Redis-backed statistics when enabled. A disabled
// config yields a nil service, which every consumer treats as "do not
// record".
func buildStats(ctx context.Context, conf *config.Config) (service.StatsService, func() error, error) {
	if !conf.Stats.Enabled {
		return nil, func() error { return nil }, nil
	}

	client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	statsRepo := repository.NewStatsRepository(client)

	return service.NewStatsService(statsRepo), client.Close, nil
}

func runServers(ctx context.Context, logger *slog.Logger, conf *config.Config, botService service.BotService, statsService service.StatsService) error {
	log := logger.With("component", "app")

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, statsService)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, botService, statsService, engine.ParseTier(conf.Difficulty))
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
