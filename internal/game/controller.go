package game

import (
	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
)

// State is the controller's coarse phase: either a side still has to move
// or the game is over and no further placements are accepted.
type State string

const (
	StateAwaitingMove State = "awaiting_move"
	StateGameOver     State = "game_over"
)

type botPolicy interface {
	PickMove(board *engine.Board, mark engine.Mark, tier engine.Tier) (engine.Cell, bool)
}

// Controller drives a single game: it owns the board, derives whose move is
// next, and delegates computer turns to the difficulty policy. Presentation
// layers interact with the game exclusively through it.
type Controller struct {
	board        *engine.Board
	bot          botPolicy
	tier         engine.Tier
	computerMark engine.Mark // EmptyCell when both sides are human
}

func NewController(bot botPolicy, tier engine.Tier, computerMark engine.Mark) *Controller {
	return &Controller{
		board:        engine.NewBoard(),
		bot:          bot,
		tier:         tier,
		computerMark: computerMark,
	}
}

func (that *Controller) Board() *engine.Board {
	return that.board
}

func (that *Controller) Tier() engine.Tier {
	return that.tier
}

func (that *Controller) ComputerMark() engine.Mark {
	return that.computerMark
}

func (that *Controller) State() State {
	if that.board.Outcome().Finished {
		return StateGameOver
	}
	return StateAwaitingMove
}

func (that *Controller) Outcome() engine.Outcome {
	return that.board.Outcome()
}

// AttemptMove places the side to move at (row, col). Out-of-range
// coordinates are rejected before the board is touched; occupied cells and
// finished games are rejected by the board itself. The board is never
// mutated on a false return.
func (that *Controller) AttemptMove(row, col int) bool {
	if row < 0 || row >= engine.Size || col < 0 || col >= engine.Size {
		return false
	}

	return that.board.Place(row, col, that.board.Turn())
}

// IsComputerTurn reports whether the configured computer side moves next.
// It is always false in a human-vs-human game and once the game is over.
func (that *Controller) IsComputerTurn() bool {
	if that.computerMark == engine.EmptyCell {
		return false
	}

	return that.State() == StateAwaitingMove && that.board.Turn() == that.computerMark
}

// ComputerMove asks the difficulty policy for a move and plays it. The
// second return is false when no move was made, which coincides with the
// game being over or the board being full.
func (that *Controller) ComputerMove() (engine.Cell, bool) {
	if that.State() == StateGameOver {
		return engine.Cell{}, false
	}

	cell, ok := that.bot.PickMove(that.board, that.board.Turn(), that.tier)
	if !ok {
		return engine.Cell{}, false
	}

	if !that.board.Place(cell.Row, cell.Col, that.board.Turn()) {
		return engine.Cell{}, false
	}

	return cell, true
}

// Reset starts a fresh game with the same difficulty and seat assignment.
func (that *Controller) Reset() {
	that.board.Reset()
}
