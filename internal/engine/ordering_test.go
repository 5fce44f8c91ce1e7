package engine

import (
	"testing"

	"github.com/schmittie/chessgo/internal/board"
)

func TestOrderReturnsEveryLegalMoveOnce(t *testing.T) {
	pos := mustFEN(t, board.StartFEN)
	want := pos.LegalMoves()
	got := NewMoveOrderer().Order(pos)

	if len(got) != len(want) {
		t.Fatalf("Order returned %d moves, want %d", len(got), len(want))
	}
	seen := make(map[board.Move]int)
	for _, m := range got {
		seen[m]++
	}
	for _, m := range want {
		if seen[m] != 1 {
			t.Errorf("move %s appears %d times in Order output, want exactly 1", m, seen[m])
		}
	}
}

func TestOrderPrefersLowerValueAttackerOnHigherValueVictim(t *testing.T) {
	// White has both PxQ and QxP available: the white pawn on e6 can
	// capture the black queen on d7, and the white queen on a4 can
	// capture the black pawn on a7 (which the d7 queen defends along the
	// seventh rank).
	pos := mustFEN(t, "8/p2q4/4P3/8/Q7/8/8/4K2k w - - 0 1")

	moves := NewMoveOrderer().Order(pos)
	indexOf := func(uci string) int {
		for i, m := range moves {
			if m.String() == uci {
				return i
			}
		}
		t.Fatalf("move %s not found among legal moves", uci)
		return -1
	}

	pxq := indexOf("e6d7") // pawn captures queen
	qxp := indexOf("a4a7") // queen captures pawn

	if pxq > qxp {
		t.Errorf("PxQ ordered at %d, QxP at %d; want PxQ strictly before QxP", pxq, qxp)
	}
}

func TestOrderFloatsChecksAboveQuietMoves(t *testing.T) {
	// White rook on h1 can check the black king on a8 by moving up the
	// h-file to h8; every other move is quiet.
	pos := mustFEN(t, "k7/8/8/8/8/8/8/4K2R w - - 0 1")
	moves := NewMoveOrderer().Order(pos)

	if len(moves) == 0 {
		t.Fatal("no legal moves")
	}
	if !pos.GivesCheck(moves[0]) {
		t.Errorf("highest-ranked move %s does not give check, want the checking move first", moves[0])
	}
}
