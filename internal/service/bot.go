package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
)

// mediumSearchChance is how often the medium tier plays the searched move
// instead of a random one.
const mediumSearchChance = 0.7

type BotService interface {
	PickMove(board *engine.Board, mark engine.Mark, tier engine.Tier) (engine.Cell, bool)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// PickMove chooses the computer's next move for the given tier. The second
// return is false when the board has no empty cell left; that coincides
// with the board being full and is not an error.
func (that *botService) PickMove(board *engine.Board, mark engine.Mark, tier engine.Tier) (engine.Cell, bool) {
	switch tier {
	case engine.TierEasy:
		return that.randomMove(board)
	case engine.TierMedium:
		if rand.Float64() < mediumSearchChance { //nolint: gosec // it's ok
			return that.searchMove(board, mark, tier)
		}
		return that.randomMove(board)
	default:
		return that.searchMove(board, mark, tier)
	}
}

func (that *botService) randomMove(board *engine.Board) (engine.Cell, bool) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return engine.Cell{}, false
	}

	return availableCells[rand.Intn(len(availableCells))], true //nolint: gosec // it's ok
}

func (that *botService) searchMove(board *engine.Board, mark engine.Mark, tier engine.Tier) (engine.Cell, bool) {
	result := engine.BestMove(board, mark, tier.MaxDepth())
	if result.Move == nil {
		return engine.Cell{}, false
	}

	return *result.Move, true
}
