package board

// This file adapts Position to the rules-engine interface the search core
// consumes: terminal detection with a Win/Draw result, a push/pop move
// stack, whole-position mirroring, and the square/occupancy queries the
// evaluator and move orderer need. Everything here is built out of the
// MakeMove/UnmakeMove/UndoInfo machinery already in movegen.go.

// TerminalOutcome classifies a terminal position relative to the side to
// move.
type TerminalOutcome int

const (
	// NotTerminal means the game continues.
	NotTerminal TerminalOutcome = iota
	// WinForSideToMove is unreachable in legal play (a side to move is never
	// already mated), kept only so TerminalResult has a total ordering.
	WinForSideToMove
	// WinForOther means the side to move has just been checkmated.
	WinForOther
	// Draw covers stalemate, the 50-move rule, and insufficient material.
	Draw
)

// IsTerminal reports whether the position has no continuation: checkmate,
// stalemate, or an automatic draw.
func (p *Position) IsTerminal() bool {
	return p.IsCheckmate() || p.IsDraw()
}

// TerminalResult classifies a terminal position. It must only be called
// when IsTerminal() is true.
func (p *Position) TerminalResult() TerminalOutcome {
	if p.IsCheckmate() {
		return WinForOther
	}
	return Draw
}

// moveStackEntry pairs an applied move with the undo information needed to
// reverse it.
type moveStackEntry struct {
	move Move
	undo UndoInfo
}

// Push applies a move and records it on the position's undo stack. Push
// must be paired with a matching Pop on every exit path, including early
// returns from alpha-beta cutoffs.
func (p *Position) Push(m Move) {
	undo := p.MakeMove(m)
	p.moveStack = append(p.moveStack, moveStackEntry{move: m, undo: undo})
}

// Pop reverses the most recent Push. Calling Pop without a matching Push
// is a programming error and is not defended against here.
func (p *Position) Pop() {
	n := len(p.moveStack)
	entry := p.moveStack[n-1]
	p.moveStack = p.moveStack[:n-1]
	p.UnmakeMove(entry.move, entry.undo)
}

// Clone returns a deep copy of the position, including its own empty move
// stack: a clone is never mid-search, so it starts with no pending Push.
func (p *Position) Clone() *Position {
	return p.Copy()
}

// GivesCheck reports whether playing m would leave the opponent in check.
// It makes and immediately unmakes the move; it does not touch p's own
// Push/Pop stack.
func (p *Position) GivesCheck(m Move) bool {
	undo := p.MakeMove(m)
	check := p.InCheck()
	p.UnmakeMove(m, undo)
	return check
}

// Mirror returns a new position with colors swapped and ranks flipped
// vertically (square ^ 0x38). It is the whole-board generalisation of
// Square.Mirror, used to search Black's side of the board as if it were
// White's.
func (p *Position) Mirror() *Position {
	m := &Position{
		SideToMove:     p.SideToMove.Other(),
		EnPassant:      NoSquare,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
	}

	for c := White; c <= Black; c++ {
		oc := c.Other()
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				m.setPiece(NewPiece(pt, oc), sq.Mirror())
			}
		}
	}

	if p.EnPassant != NoSquare {
		m.EnPassant = p.EnPassant.Mirror()
	}

	m.CastlingRights = mirrorCastlingRights(p.CastlingRights)
	m.updateOccupied()
	m.findKings()
	m.Hash = m.ComputeHash()
	m.PawnKey = m.ComputePawnKey()
	m.UpdateCheckers()
	return m
}

func mirrorCastlingRights(cr CastlingRights) CastlingRights {
	var out CastlingRights
	if cr&WhiteKingSideCastle != 0 {
		out |= BlackKingSideCastle
	}
	if cr&WhiteQueenSideCastle != 0 {
		out |= BlackQueenSideCastle
	}
	if cr&BlackKingSideCastle != 0 {
		out |= WhiteKingSideCastle
	}
	if cr&BlackQueenSideCastle != 0 {
		out |= WhiteQueenSideCastle
	}
	return out
}

// SquaresOf returns every square occupied by a (color, kind) piece.
func (p *Position) SquaresOf(c Color, pt PieceType) []Square {
	return p.Pieces[c][pt].Squares()
}

// TotalPieceCount returns the number of pieces of any kind on the board.
func (p *Position) TotalPieceCount() int {
	return p.AllOccupied.PopCount()
}

// LegalMoves returns every legal move in the position.
func (p *Position) LegalMoves() []Move {
	return p.GenerateLegalMoves().Slice()
}

// LegalCaptures returns every legal capturing move (including en passant
// and capturing promotions) in the position, plus every non-capturing
// pawn promotion.
func (p *Position) LegalCaptures() []Move {
	return p.GenerateCaptures().Slice()
}
