package engine

import (
	"log"
	"math"

	"github.com/schmittie/chessgo/internal/board"
)

// Searcher performs a fixed-depth alpha-beta minimax search with a
// quiescence extension at the leaves, driven by an Evaluator and a
// MoveOrderer. It is single-threaded, synchronous, and holds no state
// beyond the per-call node counter: a Searcher value is safe to reuse
// across independent calls to ChooseMove, and independent Searchers share
// nothing, so one per goroutine (as the tournament driver does, one
// Searcher per game) needs no synchronization.
type Searcher struct {
	evaluator *Evaluator
	orderer   *MoveOrderer

	// nodes counts internal + quiescence nodes visited, reset at the top
	// of every ChooseMove call and exposed for logging.
	nodes uint64
}

// NewSearcher returns a ready-to-use Searcher.
func NewSearcher() *Searcher {
	return &Searcher{
		evaluator: NewEvaluator(),
		orderer:   NewMoveOrderer(),
	}
}

// Nodes returns the number of nodes visited by the most recent ChooseMove
// call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// ChooseMove returns the root move that maximises side's score under
// optimal minimax play to depth plies, with alpha-beta pruning and
// quiescence at the leaves. It returns ok=false only when the root has no
// legal moves (the caller is expected to check terminal status first)
// or when depth is 0 on a non-terminal root, in which case the search
// computes only the quiescence score of the position, which is not
// returned.
func (s *Searcher) ChooseMove(pos *board.Position, side board.Color, depth int) (board.Move, bool) {
	s.nodes = 0

	searchPos := pos
	mirrored := side == board.Black
	if mirrored {
		// The inner search always maximises from White's perspective; for
		// Black we search the vertically-flipped, colour-swapped board and
		// mirror the chosen move back below.
		searchPos = pos.Mirror()
	}

	score, move := s.minimax(searchPos, true, depth, math.Inf(-1), math.Inf(1))

	ok := move != board.NoMove
	if ok && mirrored {
		move = mirrorMove(move)
	}

	// mirrored=... is the debug part of each line: whether the board was
	// mirrored because Black is to choose.
	if ok {
		log.Printf("[Search] move=%s score=%.2f depth=%d nodes=%d mirrored=%t", move, score, depth, s.nodes, mirrored)
	} else {
		log.Printf("[Search] no move found (terminal or depth=0) depth=%d nodes=%d mirrored=%t", depth, s.nodes, mirrored)
	}
	return move, ok
}

// minimax returns the score and best move of pos to the given depth,
// maximising if maximising is true and minimising otherwise, under
// fail-hard alpha-beta pruning.
func (s *Searcher) minimax(pos *board.Position, maximising bool, depth int, alpha, beta float64) (float64, board.Move) {
	s.nodes++

	if pos.IsTerminal() {
		// Evaluate's terminal shortcut does not depend on the side
		// argument: any decisive result scores +Inf, any draw scores 0.
		return s.evaluator.Evaluate(pos, board.White), board.NoMove
	}

	if depth == 0 {
		return s.quiesce(pos, maximising, alpha, beta), board.NoMove
	}

	moves := s.orderer.Order(pos)
	best := board.NoMove

	if maximising {
		for _, m := range moves {
			pos.Push(m)
			score, _ := s.minimax(pos, false, depth-1, alpha, beta)
			pos.Pop()

			if score > alpha {
				alpha = score
				best = m
			}
			if alpha >= beta {
				break // beta cutoff
			}
		}
		return alpha, best
	}

	for _, m := range moves {
		pos.Push(m)
		score, _ := s.minimax(pos, true, depth-1, alpha, beta)
		pos.Pop()

		if score < beta {
			beta = score
			best = m
		}
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return beta, best
}

// quiesce is a fail-hard quiescence search restricted to captures, used
// to stabilise leaf evaluations against the horizon effect. Evaluate is
// only mirror-symmetric, not sign-symmetric (evaluate(P,White) is not
// -evaluate(P,Black) in general, per the position evaluator's documented
// antisymmetry), so quiescence follows minimax's own convention of an
// explicit maximising/minimising alternation over an absolute,
// always-White-perspective score rather than negamax's sign-flipping.
func (s *Searcher) quiesce(pos *board.Position, maximising bool, alpha, beta float64) float64 {
	return quiesceLeaf(s.evaluator, s.orderer, pos, maximising, alpha, beta, &s.nodes)
}

// quiesceLeaf implements the quiescence algorithm itself, shared by
// Searcher (which counts nodes) and MinimaxSlow (the unpruned oracle,
// which uses quiescence as its leaf evaluation but does not count nodes).
func quiesceLeaf(e *Evaluator, o *MoveOrderer, pos *board.Position, maximising bool, alpha, beta float64, nodes *uint64) float64 {
	if nodes != nil {
		*nodes++
	}

	standPat := e.Evaluate(pos, board.White)

	if maximising {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		for _, m := range o.OrderCaptures(pos) {
			pos.Push(m)
			score := quiesceLeaf(e, o, pos, false, alpha, beta, nodes)
			pos.Pop()

			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
		return alpha
	}

	if standPat <= alpha {
		return alpha
	}
	if standPat < beta {
		beta = standPat
	}
	for _, m := range o.OrderCaptures(pos) {
		pos.Push(m)
		score := quiesceLeaf(e, o, pos, true, alpha, beta, nodes)
		pos.Pop()

		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return beta
}

// mirrorMove mirrors a move's squares vertically, keeping its flag and
// promotion piece, to translate a move found on a mirrored board back to
// the caller's original board.
func mirrorMove(m board.Move) board.Move {
	from := m.From().Mirror()
	to := m.To().Mirror()

	switch {
	case m.IsPromotion():
		return board.NewPromotion(from, to, m.Promotion())
	case m.IsEnPassant():
		return board.NewEnPassant(from, to)
	case m.IsCastling():
		return board.NewCastling(from, to)
	default:
		return board.NewMove(from, to)
	}
}
