package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/service"
)

type statsRecorder interface {
	RecordOutcome(ctx context.Context, tier engine.Tier, outcome engine.Outcome) error
}

type handlerFunc func(ctx context.Context, sess *session, payload json.RawMessage) ResponsePayload

// Server is the WebSocket front-end for the browser UI. Each connection
// hosts one human-vs-computer game; all game logic stays behind the
// controller.
type Server struct {
	logger *slog.Logger
	bot    service.BotService
	stats  statsRecorder // nil when stats are disabled

	defaultTier engine.Tier
	upgrader    websocket.Upgrader
	handlers    map[string]handlerFunc
}

func New(logger *slog.Logger, bot service.BotService, stats statsRecorder, defaultTier engine.Tier) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		bot:    bot,
		stats:  stats,

		defaultTier: defaultTier,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:turn"] = server.handleTurn
	server.handlers["game:reset"] = server.handleReset

	return server
}

// Start serves /ws until the listener fails or ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection upgrades the request and runs the connection's read loop.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("remote", r.RemoteAddr)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("connection established")

	sess := &session{}
	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			log.Info("connection closed", "error", err)
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			if err = that.send(conn, message.Action, errorPayload(apperror.ErrUnknownAction)); err != nil {
				log.Error("failed to send message", "error", err)
				return
			}
			continue
		}

		if err = that.send(conn, message.Action, handler(ctx, sess, message.Payload)); err != nil {
			log.Error("failed to send message", "error", err)
			return
		}
	}
}

func (that *Server) send(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
