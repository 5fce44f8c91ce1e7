package engine

import (
	"sort"

	"github.com/schmittie/chessgo/internal/board"
)

// checkBonus floats any checking move above most captures.
const checkBonus = 100

// captureWeight is the MVV/LVA multiplier: high enough that a capture by
// any piece but the king, even a bad one, sorts ahead of every quiet move
// that does not give check: rook takes pawn scores 15*1 - 5 = 10, above a
// quiet move's 0. A king capture scores below zero because of the king's
// own material value.
const captureWeight = 15

// MoveOrderer ranks a position's legal moves so that alpha-beta search
// explores the likely-best moves first, maximising the cutoff rate.
// It keeps its score channel (integer-ish bonuses scaled by
// captureWeight) deliberately separate from the evaluator's score
// channel (plain pawn units); the two are never compared directly.
type MoveOrderer struct{}

// NewMoveOrderer returns a MoveOrderer. Stateless: ordering is a pure
// function of the position.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{}
}

// scoredMove pairs a move with its ordering score and generation index,
// so the sort below can break ties by original (generation) order.
type scoredMove struct {
	move  board.Move
	score float64
	seq   int
}

// Order returns every legal move in pos exactly once, sorted by
// descending heuristic score. Ties preserve generation order.
func (mo *MoveOrderer) Order(pos *board.Position) []board.Move {
	moves := pos.LegalMoves()
	scored := make([]scoredMove, len(moves))

	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: mo.score(pos, m), seq: i}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]board.Move, len(scored))
	for i, s := range scored {
		ordered[i] = s.move
	}
	return ordered
}

// score computes a single move's ordering heuristic: +100 for check,
// 15*victim - attacker for captures (MVV/LVA), plus the promoted piece's
// value for promotions. These bonuses stack.
func (mo *MoveOrderer) score(pos *board.Position, m board.Move) float64 {
	var s float64

	if pos.GivesCheck(m) {
		s += checkBonus
	}

	if captured := pos.PieceAt(m.To()); captured != board.NoPiece {
		victim := MaterialValue(captured.Type())
		attacker := MaterialValue(movingPieceType(pos, m))
		s += captureWeight*victim - attacker
	} else if m.IsEnPassant() {
		s += captureWeight*PawnValue - PawnValue
	}

	if m.IsPromotion() {
		s += MaterialValue(m.Promotion())
	}

	return s
}

// movingPieceType returns the type of the piece making the move.
func movingPieceType(pos *board.Position, m board.Move) board.PieceType {
	return pos.PieceAt(m.From()).Type()
}

// OrderCaptures returns every legal capture in pos, ordered the same way
// as Order, so quiescence can try promising captures first.
func (mo *MoveOrderer) OrderCaptures(pos *board.Position) []board.Move {
	captures := pos.LegalCaptures()
	scored := make([]scoredMove, len(captures))

	for i, m := range captures {
		scored[i] = scoredMove{move: m, score: mo.score(pos, m), seq: i}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]board.Move, len(scored))
	for i, s := range scored {
		ordered[i] = s.move
	}
	return ordered
}
