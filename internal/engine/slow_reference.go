package engine

import (
	"math"

	"github.com/schmittie/chessgo/internal/board"
)

// MinimaxSlow is the unpruned reference search: brute-forces the full
// tree with no alpha-beta cutoff at internal nodes. Depth-0 leaves still
// go through the same quiescence routine the pruned searcher uses, with
// an unbounded window so quiescence itself performs no cutoff either.
// Quiescence is part of leaf evaluation, not part of what gets pruned,
// so both searches must call it the same way for their root scores to
// be comparable. Exists purely as a correctness oracle for property
// tests; roughly two orders of magnitude slower than Searcher.ChooseMove.
func MinimaxSlow(e *Evaluator, o *MoveOrderer, pos *board.Position, maximising bool, depth int) (float64, board.Move) {
	if pos.IsTerminal() {
		return e.Evaluate(pos, board.White), board.NoMove
	}
	if depth == 0 {
		return quiesceLeaf(e, o, pos, maximising, math.Inf(-1), math.Inf(1), nil), board.NoMove
	}

	moves := o.Order(pos)
	best := board.NoMove

	if maximising {
		maxScore := math.Inf(-1)
		for _, m := range moves {
			pos.Push(m)
			score, _ := MinimaxSlow(e, o, pos, false, depth-1)
			pos.Pop()

			if score > maxScore {
				maxScore = score
				best = m
			}
		}
		return maxScore, best
	}

	minScore := math.Inf(1)
	for _, m := range moves {
		pos.Push(m)
		score, _ := MinimaxSlow(e, o, pos, true, depth-1)
		pos.Pop()

		if score < minScore {
			minScore = score
			best = m
		}
	}
	return minScore, best
}
