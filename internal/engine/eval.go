package engine

import (
	"math"

	"github.com/schmittie/chessgo/internal/board"
)

// minPieces and maxPieces bound the game-phase scalar's input domain.
const (
	minPieces = 2
	maxPieces = 32
)

// phaseSteepness is the fixed steepness factor in the logistic phase
// blend.
const phaseSteepness = 6.0

// gamePhase maps a total piece count to a scalar in [0, 1]: close to 0 in
// the opening (many pieces on the board), close to 1 in the endgame (few
// left). Any two positions with the same piece count yield the same
// phase. It is a pure function of N, nothing else.
func gamePhase(totalPieces int) float64 {
	n := float64(totalPieces)
	scaled := 2*(n-minPieces)/(maxPieces-minPieces) - 1
	return 1 / (1 + math.Exp(phaseSteepness*scaled))
}

// Evaluator scores a position from one side's perspective using a
// phase-blended piece-square table plus material.
type Evaluator struct{}

// NewEvaluator returns an Evaluator. It carries no state: the PSTs and
// material table are package-level constants shared by every instance.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores pos from side's perspective: positive means side is
// better, zero is equal. A terminal position with a winner (whichever
// side delivered it) scores +Inf; a drawn terminal position scores 0.
// Deliberately does not distinguish a win for side from a win for the
// opponent: any decisive result gets the same sentinel.
//
// The PSTs are written from White's point of view: White's pieces read
// them directly and Black's pieces read them through mirrorVertical,
// whichever side is asked for. Evaluate(P, c) therefore equals
// Evaluate(P.Mirror(), c.Other()).
func (e *Evaluator) Evaluate(pos *board.Position, side board.Color) float64 {
	if pos.IsTerminal() {
		if pos.TerminalResult() != board.Draw {
			return math.Inf(1)
		}
		return 0
	}

	phase := gamePhase(pos.TotalPieceCount())
	enemy := side.Other()

	var score float64
	for pt := board.Pawn; pt <= board.King; pt++ {
		table := blendedTable(pt, phase)

		for _, sq := range pos.SquaresOf(side, pt) {
			if side == board.Black {
				sq = mirrorVertical(sq)
			}
			score += table[sq]
		}
		for _, sq := range pos.SquaresOf(enemy, pt) {
			if enemy == board.Black {
				sq = mirrorVertical(sq)
			}
			score -= table[sq]
		}
	}

	return score
}

// blendedTable computes T_k = (1-phase)*opening + phase*endgame, scaled
// from centipawns to pawns, plus the piece's flat material value.
func blendedTable(pt board.PieceType, phase float64) [64]float64 {
	opening := pstOpening[pt]
	endgame := pstEndgame[pt]
	material := MaterialValue(pt)

	var table [64]float64
	for sq := 0; sq < 64; sq++ {
		table[sq] = (1-phase)*opening[sq]/100+phase*endgame[sq]/100 + material
	}
	return table
}

// mirrorVertical flips a square across the horizontal midline (square ^
// 0x38), rotating a White-oriented PST to read from Black's viewpoint.
func mirrorVertical(sq board.Square) board.Square {
	return sq.Mirror()
}
