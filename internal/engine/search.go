package engine

import "math"

// winScore is the magnitude of a terminal score. A win found at depth d is
// worth winScore-d, so faster wins score higher and faster losses hurt more.
const winScore = 10

// SearchResult is the outcome of a minimax call: the score of the best line
// found and the move that starts it. Move is nil when the position has no
// legal move, i.e. the board is already full or terminal.
type SearchResult struct {
	Score int
	Move  *Cell
}

// BestMove runs a depth-limited minimax search with alpha-beta pruning and
// returns the best move for maxMark together with its score. maxDepth is
// the search horizon in plies; positions at the horizon score as drawish.
//
// The search mutates the borrowed board speculatively but rolls every move
// back, so the board is bit-identical to its input when BestMove returns.
func BestMove(b *Board, maxMark Mark, maxDepth int) SearchResult {
	return minimax(b, maxMark, 0, maxDepth, math.MinInt, math.MaxInt)
}

func minimax(b *Board, maxMark Mark, depth, maxDepth, alpha, beta int) SearchResult {
	switch {
	case b.HasWin(maxMark):
		return SearchResult{Score: winScore - depth}
	case b.HasWin(maxMark.Opponent()):
		return SearchResult{Score: depth - winScore}
	case b.IsFull():
		return SearchResult{Score: 0}
	case depth >= maxDepth:
		// Horizon reached: treat the position as drawish instead of
		// evaluating it. Shallow tiers play weaker on purpose.
		return SearchResult{Score: 0}
	}

	maximizing := b.Turn() == maxMark

	var best SearchResult
	if maximizing {
		best.Score = math.MinInt
	} else {
		best.Score = math.MaxInt
	}

	for _, cell := range b.EmptyCells() {
		score := b.speculate(cell, func() int {
			return minimax(b, maxMark, depth+1, maxDepth, alpha, beta).Score
		})

		if maximizing {
			if score > best.Score {
				move := cell
				best = SearchResult{Score: score, Move: &move}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				move := cell
				best = SearchResult{Score: score, Move: &move}
			}
			beta = min(beta, best.Score)
		}

		// Remaining siblings cannot change the result.
		if beta <= alpha {
			break
		}
	}

	return best
}

// speculate places the side to move at cell, runs visit and rolls the board
// back before returning. The rollback runs on every exit path, pruning
// breaks included, and restores the turn marker that Place toggled.
func (that *Board) speculate(cell Cell, visit func() int) int {
	turn := that.turn

	that.Place(cell.Row, cell.Col, turn)
	defer func() {
		that.UndoLast(cell.Row, cell.Col)
		that.turn = turn
	}()

	return visit()
}
