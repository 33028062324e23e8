package websocket

import (
	"context"
	"encoding/json"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/game"
)

// session is one connection's game. A session hosts a single human against
// the computer; the connection's read loop is the only goroutine touching
// it.
type session struct {
	ctrl      *game.Controller
	humanMark engine.Mark
}

// handleNewGame starts a game at the requested difficulty. When the client
// does not pick a side, the server assigns one at random. If the computer
// ends up with X it moves first, and the reply carries that move.
func (that *Server) handleNewGame(ctx context.Context, sess *session, payload json.RawMessage) ResponsePayload {
	var req NewGamePayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return errorPayload(err)
		}
	}

	humanMark := pickHumanMark(req.Mark)

	tier := that.defaultTier
	if req.Difficulty != "" {
		tier = engine.ParseTier(req.Difficulty)
	}

	sess.humanMark = humanMark
	sess.ctrl = game.NewController(that.bot, tier, humanMark.Opponent())

	var computerMove *engine.Cell
	if sess.ctrl.IsComputerTurn() {
		if cell, ok := sess.ctrl.ComputerMove(); ok {
			computerMove = &cell
		}
	}

	return that.statePayload(ctx, sess, computerMove)
}

// handleTurn applies the human's move, then lets the computer answer when
// it is its turn. Rejected moves come back as error payloads with the
// current state untouched.
func (that *Server) handleTurn(ctx context.Context, sess *session, payload json.RawMessage) ResponsePayload {
	if sess.ctrl == nil {
		return errorPayload(apperror.ErrNoActiveGame)
	}

	var req TurnPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorPayload(err)
	}

	if sess.ctrl.State() == game.StateGameOver {
		return errorPayload(apperror.ErrGameFinished)
	}

	if req.Row < 0 || req.Row >= engine.Size || req.Col < 0 || req.Col >= engine.Size {
		return errorPayload(apperror.ErrInvalidCell)
	}

	if !sess.ctrl.AttemptMove(req.Row, req.Col) {
		return errorPayload(apperror.ErrCellOccupied)
	}

	var computerMove *engine.Cell
	if sess.ctrl.IsComputerTurn() {
		if cell, ok := sess.ctrl.ComputerMove(); ok {
			computerMove = &cell
		}
	}

	return that.statePayload(ctx, sess, computerMove)
}

// handleReset starts the session's game over with the same difficulty and
// seats.
func (that *Server) handleReset(ctx context.Context, sess *session, _ json.RawMessage) ResponsePayload {
	if sess.ctrl == nil {
		return errorPayload(apperror.ErrNoActiveGame)
	}

	sess.ctrl.Reset()

	return that.statePayload(ctx, sess, nil)
}

// statePayload snapshots the session's game for the client and records the
// outcome once the game just finished.
func (that *Server) statePayload(ctx context.Context, sess *session, computerMove *engine.Cell) ResponsePayload {
	board := sess.ctrl.Board().Grid()

	resp := ResponsePayload{
		Board:        &board,
		YourMark:     sess.humanMark,
		Difficulty:   sess.ctrl.Tier(),
		ComputerMove: computerMove,
	}

	outcome := sess.ctrl.Outcome()
	if outcome.Finished {
		resp.Outcome = &outcome
		that.recordOutcome(ctx, sess)
	} else {
		resp.Turn = sess.ctrl.Board().Turn()
	}

	return resp
}

func (that *Server) recordOutcome(ctx context.Context, sess *session) {
	if that.stats == nil {
		return
	}

	if err := that.stats.RecordOutcome(ctx, sess.ctrl.Tier(), sess.ctrl.Outcome()); err != nil {
		that.logger.Error("failed to record outcome", "error", err)
	}
}

func pickHumanMark(requested string) engine.Mark {
	switch engine.Mark(requested) {
	case engine.MarkX:
		return engine.MarkX
	case engine.MarkO:
		return engine.MarkO
	}

	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return engine.MarkX
	}
	return engine.MarkO
}

func errorPayload(err error) ResponsePayload {
	return ResponsePayload{Error: err.Error()}
}
