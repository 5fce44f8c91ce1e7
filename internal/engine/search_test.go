package engine

import (
	"math"
	"testing"

	"github.com/schmittie/chessgo/internal/board"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

func containsMove(moves []board.Move, m board.Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}

func TestChooseMoveReturnsLegalMove(t *testing.T) {
	// 1. e4 c5 2. Nf3, Black to move.
	pos := mustFEN(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	s := NewSearcher()

	move, ok := s.ChooseMove(pos, board.Black, 2)
	if !ok {
		t.Fatal("ChooseMove returned ok=false on a non-terminal position")
	}
	if !containsMove(pos.LegalMoves(), move) {
		t.Errorf("ChooseMove returned %s, which is not a legal move", move)
	}
}

func TestChooseMoveMateInOne(t *testing.T) {
	pos := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	s := NewSearcher()

	move, ok := s.ChooseMove(pos, board.White, 2)
	if !ok {
		t.Fatal("expected a move, got none")
	}

	pos.Push(move)
	defer pos.Pop()

	if !pos.IsTerminal() {
		t.Fatalf("move %s did not produce a terminal position", move)
	}
	if pos.TerminalResult() != board.WinForOther {
		t.Errorf("move %s produced terminal result %v, want a win for White", move, pos.TerminalResult())
	}
}

func TestChooseMoveStalemateReturnsNoMove(t *testing.T) {
	pos := mustFEN(t, "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	if !pos.IsTerminal() {
		t.Fatal("test position should be terminal (stalemate)")
	}
	if pos.TerminalResult() != board.Draw {
		t.Fatalf("TerminalResult() = %v, want Draw", pos.TerminalResult())
	}

	s := NewSearcher()
	_, ok := s.ChooseMove(pos, board.Black, 3)
	if ok {
		t.Error("ChooseMove on a stalemated position should return ok=false")
	}
}

func TestChooseMoveDepthZeroReturnsNoMove(t *testing.T) {
	pos := mustFEN(t, board.StartFEN)
	s := NewSearcher()

	_, ok := s.ChooseMove(pos, board.White, 0)
	if ok {
		t.Error("ChooseMove at depth=0 on a non-terminal position should return ok=false (quiescence score, no move)")
	}
}

func TestQuiesceNoCapturesEqualsStandPat(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	e := NewEvaluator()
	o := NewMoveOrderer()

	standPat := e.Evaluate(pos, board.White)
	got := quiesceLeaf(e, o, pos, true, negInf, posInf, nil)

	if got != standPat {
		t.Errorf("quiesce with no captures = %v, want stand-pat %v", got, standPat)
	}
}

func TestQuiesceDeclinesBadCapture(t *testing.T) {
	// White queen could capture a pawn defended by a rook: a losing trade
	// quiescence must decline. Black rook a8 defends pawn a7; white
	// queen a1 could play Qxa7 but would be recaptured for a heavy loss.
	pos := mustFEN(t, "r3k3/p7/8/8/8/8/8/Q3K3 w - - 0 1")
	e := NewEvaluator()
	o := NewMoveOrderer()

	standPat := e.Evaluate(pos, board.White)
	got := quiesceLeaf(e, o, pos, true, negInf, posInf, nil)

	if got != standPat {
		t.Errorf("quiesce = %v, want stand-pat %v (bad capture should be declined)", got, standPat)
	}
}

func TestAlphaBetaMatchesSlowReference(t *testing.T) {
	positions := []string{
		board.StartFEN,
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 4 4",
	}
	e := NewEvaluator()
	o := NewMoveOrderer()

	for _, fen := range positions {
		for depth := 0; depth <= 2; depth++ {
			pos := mustFEN(t, fen)
			fast, _ := (&Searcher{evaluator: e, orderer: o}).minimax(pos, true, depth, negInf, posInf)

			pos2 := mustFEN(t, fen)
			slow, _ := MinimaxSlow(e, o, pos2, true, depth)

			if fast != slow {
				t.Errorf("fen %q depth %d: alpha-beta root score %v != slow reference %v", fen, depth, fast, slow)
			}
		}
	}
}
