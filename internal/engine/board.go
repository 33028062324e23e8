package engine

// Mark is one of the two symbols a player places on the board.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	EmptyCell Mark = ""
)

// Opponent returns the other playing mark.
func (m Mark) Opponent() Mark {
	if m == MarkX {
		return MarkO
	}
	return MarkX
}

// Size is the board side length. The engine only supports 3x3 boards.
const Size = 3

const maxMoves = Size * Size

// Cell addresses a single square by zero-based row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Outcome is the derived result of a board: still in progress, won by a
// mark, or drawn. Winner is EmptyCell for draws and games in progress.
type Outcome struct {
	Finished bool `json:"finished"`
	Winner   Mark `json:"winner,omitempty"`
}

func (o Outcome) InProgress() bool {
	return !o.Finished
}

func (o Outcome) Won() bool {
	return o.Finished && o.Winner != EmptyCell
}

func (o Outcome) Drawn() bool {
	return o.Finished && o.Winner == EmptyCell
}

// winLines enumerates every winning combination: three rows, three columns
// and the two diagonals.
var winLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board holds the mutable state of a single game: the grid of marks, the
// side to move, the number of placed marks and the derived outcome.
//
// A Board is exclusively owned by its caller; the search borrows it for the
// duration of one call and rolls back every speculative move before
// returning.
type Board struct {
	grid    [Size][Size]Mark
	turn    Mark
	moves   int
	outcome Outcome
}

// NewBoard returns an empty board with X to move.
func NewBoard() *Board {
	return &Board{turn: MarkX}
}

// Reset returns the board to its initial empty state with X to move.
func (that *Board) Reset() {
	*that = Board{turn: MarkX}
}

// Place puts mark at (row, col). It returns false without mutating the
// board when the game is already finished, the cell is occupied, or mark is
// not the side to move. Coordinates must be in range; callers validate
// external input before delegating here.
func (that *Board) Place(row, col int, mark Mark) bool {
	if that.outcome.Finished {
		return false
	}

	if that.grid[row][col] != EmptyCell {
		return false
	}

	if mark != that.turn {
		return false
	}

	that.grid[row][col] = mark
	that.moves++

	switch {
	case that.HasWin(mark):
		that.outcome = Outcome{Finished: true, Winner: mark}
	case that.moves == maxMoves:
		that.outcome = Outcome{Finished: true}
	default:
		that.turn = mark.Opponent()
	}

	return true
}

// UndoLast clears a cell previously filled by Place, decrements the move
// count and puts the outcome back to in-progress. The board keeps no move
// history, so the caller must also restore the turn marker it observed
// before the move.
func (that *Board) UndoLast(row, col int) {
	that.grid[row][col] = EmptyCell
	that.moves--
	that.outcome = Outcome{}
}

// HasWin reports whether mark occupies all three cells of any row, column
// or diagonal. It is a pure read of the grid.
func (that *Board) HasWin(mark Mark) bool {
	for _, line := range winLines {
		if that.grid[line[0].Row][line[0].Col] == mark &&
			that.grid[line[1].Row][line[1].Col] == mark &&
			that.grid[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

// EmptyCells lists the unoccupied cells in row-major order. The order is
// fixed so that search results are reproducible.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, maxMoves-that.moves)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.grid[row][col] == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	return that.moves == maxMoves
}

// Turn returns the mark that moves next. Once the game is finished the
// value is no longer meaningful.
func (that *Board) Turn() Mark {
	return that.turn
}

func (that *Board) Outcome() Outcome {
	return that.outcome
}

func (that *Board) MoveCount() int {
	return that.moves
}

func (that *Board) CellAt(row, col int) Mark {
	return that.grid[row][col]
}

// Grid returns a copy of the grid for rendering and serialization.
func (that *Board) Grid() [Size][Size]Mark {
	return that.grid
}
