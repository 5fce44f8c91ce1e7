// Package engine implements the position evaluator, move orderer, and
// alpha-beta minimax searcher that choose a move from a legal position.
package engine

import "github.com/schmittie/chessgo/internal/board"

// Material values in pawns. The king's value is intentionally enormous:
// it expresses that losing the king dominates every other term, which is
// what makes the search refuse lines that hang it even without a
// dedicated mate detector.
const (
	PawnValue   = 1.0
	KnightValue = 2.8
	BishopValue = 3.1
	RookValue   = 5.0
	QueenValue  = 9.0
	KingValue   = 100000.0
)

// materialValues indexes material value by board.PieceType.
var materialValues = [6]float64{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// MaterialValue returns the material value of a piece kind, in pawns.
func MaterialValue(pt board.PieceType) float64 {
	return materialValues[pt]
}
