package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countMarks counts non-empty cells directly off the grid.
func countMarks(b *Board) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.CellAt(row, col) != EmptyCell {
				count++
			}
		}
	}
	return count
}

// playAll places the given cells in order, alternating X and O, and fails
// the test if any placement is rejected.
func playAll(t *testing.T, b *Board, cells ...Cell) {
	t.Helper()
	for _, cell := range cells {
		require.True(t, b.Place(cell.Row, cell.Col, b.Turn()), "cell %v should be playable", cell)
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Successful move toggles the turn and counts the move", func(t *testing.T) {
		// Given: a fresh board with X to move
		board := NewBoard()

		// When: X plays the center
		ok := board.Place(1, 1, MarkX)

		// Then: the move is accepted, O is to move and the count advanced
		require.True(t, ok)
		assert.Equal(t, MarkX, board.CellAt(1, 1))
		assert.Equal(t, MarkO, board.Turn())
		assert.Equal(t, 1, board.MoveCount())
		assert.True(t, board.Outcome().InProgress())
	})

	t.Run("Rejects an occupied cell without mutation", func(t *testing.T) {
		// Given: a board where X already holds the center
		board := NewBoard()
		playAll(t, board, Cell{1, 1})
		before := *board

		// When: O tries the same cell
		ok := board.Place(1, 1, MarkO)

		// Then: the move is rejected and nothing changed
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Rejects a mark that is not the side to move", func(t *testing.T) {
		// Given: a fresh board with X to move
		board := NewBoard()
		before := *board

		// When: O tries to move first
		ok := board.Place(0, 0, MarkO)

		// Then: the move is rejected and nothing changed
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Completing a row wins the game", func(t *testing.T) {
		// Given: X holds (0,0) and (0,1), O holds (1,0) and (1,1)
		board := NewBoard()
		playAll(t, board, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})

		// When: X completes the top row
		ok := board.Place(0, 2, MarkX)

		// Then: the game is won by X
		require.True(t, ok)
		assert.True(t, board.Outcome().Won())
		assert.Equal(t, MarkX, board.Outcome().Winner)
		assert.True(t, board.HasWin(MarkX))
	})

	t.Run("Rejects any move once the game is finished", func(t *testing.T) {
		// Given: a game already won by X
		board := NewBoard()
		playAll(t, board, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1}, Cell{0, 2})
		require.True(t, board.Outcome().Finished)
		before := *board

		// When: O tries to keep playing
		ok := board.Place(2, 2, MarkO)

		// Then: the move is rejected and the board is untouched
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Filling the board without a win is a draw", func(t *testing.T) {
		// Given: a sequence that fills the board with no three in a row
		board := NewBoard()
		// X O X / X O O / O X X
		playAll(t, board,
			Cell{0, 0}, Cell{0, 1}, Cell{0, 2},
			Cell{1, 1}, Cell{1, 0}, Cell{1, 2},
			Cell{2, 1}, Cell{2, 0}, Cell{2, 2},
		)

		// Then: the board is full and drawn, and further moves are rejected
		assert.True(t, board.IsFull())
		assert.True(t, board.Outcome().Drawn())
		assert.False(t, board.Outcome().Won())
		for _, cell := range []Cell{{0, 0}, {1, 2}, {2, 2}} {
			assert.False(t, board.Place(cell.Row, cell.Col, MarkX))
			assert.False(t, board.Place(cell.Row, cell.Col, MarkO))
		}
	})

	t.Run("Move count always equals the number of placed marks", func(t *testing.T) {
		// Given: a board played to a draw
		board := NewBoard()
		moves := []Cell{
			{0, 0}, {0, 1}, {0, 2},
			{1, 1}, {1, 0}, {1, 2},
			{2, 1}, {2, 0}, {2, 2},
		}

		// Then: the invariant holds after every single placement
		for _, cell := range moves {
			playAll(t, board, cell)
			assert.Equal(t, countMarks(board), board.MoveCount())
		}
	})
}

func TestBoard_HasWin(t *testing.T) {
	cases := []struct {
		name string
		line []Cell
	}{
		{"row", []Cell{{1, 0}, {1, 1}, {1, 2}}},
		{"column", []Cell{{0, 2}, {1, 2}, {2, 2}}},
		{"main diagonal", []Cell{{0, 0}, {1, 1}, {2, 2}}},
		{"anti diagonal", []Cell{{0, 2}, {1, 1}, {2, 0}}},
	}

	for _, tc := range cases {
		t.Run("Detects a win on a "+tc.name, func(t *testing.T) {
			board := NewBoard()
			for _, cell := range tc.line {
				board.grid[cell.Row][cell.Col] = MarkO
			}

			assert.True(t, board.HasWin(MarkO))
			assert.False(t, board.HasWin(MarkX))
		})
	}

	t.Run("No win on an empty board", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.HasWin(MarkX))
		assert.False(t, board.HasWin(MarkO))
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Lists all cells of a fresh board in row-major order", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: enumerating the empty cells
		cells := board.EmptyCells()

		// Then: all nine cells come back ordered row 0..2, col 0..2
		require.Len(t, cells, 9)
		want := []Cell{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		assert.Equal(t, want, cells)
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with the center taken
		board := NewBoard()
		playAll(t, board, Cell{1, 1})

		// When: enumerating the empty cells
		cells := board.EmptyCells()

		// Then: the center is missing and eight cells remain
		require.Len(t, cells, 8)
		assert.NotContains(t, cells, Cell{1, 1})
	})
}

func TestBoard_UndoLast(t *testing.T) {
	t.Run("Rolls back a move given the caller restores the turn", func(t *testing.T) {
		// Given: a board with one speculative move applied
		board := NewBoard()
		before := *board
		turn := board.Turn()
		require.True(t, board.Place(2, 0, turn))

		// When: undoing the move and restoring the turn marker
		board.UndoLast(2, 0)
		board.turn = turn

		// Then: the board is bit-identical to its pre-move state
		assert.Equal(t, before, *board)
	})

	t.Run("Clears a terminal outcome", func(t *testing.T) {
		// Given: X one move away from winning the top row
		board := NewBoard()
		playAll(t, board, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})
		turn := board.Turn()
		require.True(t, board.Place(0, 2, turn))
		require.True(t, board.Outcome().Won())

		// When: undoing the winning move
		board.UndoLast(0, 2)
		board.turn = turn

		// Then: the game is back in progress
		assert.True(t, board.Outcome().InProgress())
		assert.Equal(t, 4, board.MoveCount())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a finished game
	board := NewBoard()
	playAll(t, board, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1}, Cell{0, 2})
	require.True(t, board.Outcome().Finished)

	// When: resetting the board
	board.Reset()

	// Then: it matches a freshly constructed board
	assert.Equal(t, *NewBoard(), *board)
	assert.Equal(t, MarkX, board.Turn())
	assert.Equal(t, 0, board.MoveCount())
}
