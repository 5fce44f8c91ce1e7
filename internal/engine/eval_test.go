package engine

import (
	"math"
	"testing"

	"github.com/schmittie/chessgo/internal/board"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestGamePhaseBounds(t *testing.T) {
	if p := gamePhase(32); p >= 0.03 {
		t.Errorf("phase(32) = %v, want < 0.03", p)
	}
	if p := gamePhase(2); p <= 0.97 {
		t.Errorf("phase(2) = %v, want > 0.97", p)
	}
}

func TestGamePhaseMonotonic(t *testing.T) {
	prev := gamePhase(2)
	for n := 3; n <= 32; n++ {
		cur := gamePhase(n)
		if cur > prev {
			t.Fatalf("phase(%d) = %v > phase(%d) = %v, want non-increasing", n, cur, n-1, prev)
		}
		prev = cur
	}
}

func TestGamePhasePureFunctionOfCount(t *testing.T) {
	// Two unrelated positions with the same piece count must score the
	// same phase.
	a := mustFEN(t, board.StartFEN) // 32 pieces
	b := mustFEN(t, "r1bqkbnr/pppppppp/2n5/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2") // 32 pieces
	if gamePhase(a.TotalPieceCount()) != gamePhase(b.TotalPieceCount()) {
		t.Errorf("equal piece counts produced different phases")
	}
}

func TestEvaluateCheckmateIsInfinite(t *testing.T) {
	// Back-rank mate, Black to move and mated.
	pos := mustFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	e := NewEvaluator()
	score := e.Evaluate(pos, board.White)
	if !math.IsInf(score, 1) {
		t.Errorf("Evaluate on checkmate = %v, want +Inf", score)
	}
	// The sentinel does not distinguish whose perspective "won": the same
	// +Inf comes back regardless of which side we ask from, deliberately
	// not signed -Inf for the mated side.
	scoreBlack := e.Evaluate(pos, board.Black)
	if !math.IsInf(scoreBlack, 1) {
		t.Errorf("Evaluate(Black) on checkmate = %v, want +Inf", scoreBlack)
	}
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	pos := mustFEN(t, "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	e := NewEvaluator()
	if score := e.Evaluate(pos, board.White); score != 0 {
		t.Errorf("Evaluate on stalemate = %v, want 0", score)
	}
}

func TestEvaluateMirrorAntisymmetry(t *testing.T) {
	// evaluate(P, c) == evaluate(P.mirror(), ~c): not the naive
	// evaluate(P,c) == -evaluate(P,~c), which does not hold in general.
	e := NewEvaluator()
	positions := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/4K3/8/7R w - - 0 1",
	}
	for _, fen := range positions {
		pos := mustFEN(t, fen)
		mirrored := pos.Mirror()
		a := e.Evaluate(pos, board.White)
		b := e.Evaluate(mirrored, board.Black)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("fen %q: Evaluate(P,White)=%v, Evaluate(P.Mirror(),Black)=%v, want equal", fen, a, b)
		}

		a2 := e.Evaluate(pos, board.Black)
		b2 := e.Evaluate(mirrored, board.White)
		if math.Abs(a2-b2) > 1e-9 {
			t.Errorf("fen %q: Evaluate(P,Black)=%v, Evaluate(P.Mirror(),White)=%v, want equal", fen, a2, b2)
		}
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	pos := mustFEN(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 4 4")
	roundTrip := pos.Mirror().Mirror()

	if pos.SideToMove != roundTrip.SideToMove {
		t.Errorf("SideToMove changed across double mirror")
	}
	if pos.AllOccupied != roundTrip.AllOccupied {
		t.Errorf("AllOccupied changed across double mirror")
	}
	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			if pos.Pieces[c][pt] != roundTrip.Pieces[c][pt] {
				t.Errorf("Pieces[%v][%v] changed across double mirror", c, pt)
			}
		}
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	pos := mustFEN(t, board.StartFEN)
	before := *pos

	for _, m := range pos.LegalMoves() {
		pos.Push(m)
		pos.Pop()
		if pos.Hash != before.Hash || pos.AllOccupied != before.AllOccupied || pos.SideToMove != before.SideToMove {
			t.Fatalf("Push/Pop of %s left position changed", m)
		}
	}
}
