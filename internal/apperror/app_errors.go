package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNoActiveGame  = errors.New("no active game")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell coordinates")
	ErrUnknownAction = errors.New("unknown action")
)
