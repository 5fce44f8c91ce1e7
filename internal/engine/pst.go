package engine

// Piece-square tables, one (opening, endgame) pair per piece kind, embedded
// bit-exact from the original evaluator. Oriented from White's
// perspective: index 0 = a1, index 63 = h8. Values are centipawns; they
// are divided by 100 when blended into the evaluator's score (see
// eval.go). These are constants, never mutated after startup.

// pawnsOpening rewards central pawn pushes and keeps flank pawns home in
// front of a castled king.
var pawnsOpening = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0, // rank 1
	5, 5, 5, -20, -20, 10, 10, -5, // rank 2
	-5, -5, -10, 0, 0, -10, -5, 5, // rank 3
	0, 0, 0, 20, 20, 0, 0, 0, // rank 4
	5, 5, 10, 25, 25, 10, 5, 5, // rank 5
	10, 10, 20, 30, 30, 30, 25, 15, // rank 6
	75, 80, 75, 60, 60, 90, 50, 50, // rank 7
	0, 0, 0, 0, 0, 0, 0, 0, // rank 8
}

// pawnsEndgame rewards aggressively pushing passers toward promotion.
var pawnsEndgame = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0,
	15, 10, 10, 0, 0, 0, 0, -10,
	5, 5, -5, 0, 0, -5, -5, -7,
	15, 10, 0, -10, -10, -10, 0, 0,
	30, 25, 15, 5, 5, 5, 20, 20,
	100, 100, 100, 80, 60, 50, 80, 90,
	150, 150, 125, 120, 130, 120, 160, 190,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// knightsOpening and knightsEndgame keep knights centralised off the rim
// in both phases.
var knightsOpening = [64]float64{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var knightsEndgame = knightsOpening

// bishopsOpening allows bishops either centralised or fianchettoed.
var bishopsOpening = [64]float64{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 10, 0, 0, 0, 0, 10, -10,
	-5, 10, 10, 10, 10, 10, 10, -5,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

// bishopsEndgame lets bishops roam anywhere in the endgame.
var bishopsEndgame = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 5, 5, 5, 5, 5, 5, 0,
	0, 5, 7, 7, 7, 7, 5, 0,
	0, 5, 7, 10, 10, 7, 5, 0,
	0, 5, 7, 10, 10, 7, 5, 0,
	0, 5, 7, 7, 7, 7, 5, 0,
	0, 5, 5, 5, 5, 5, 5, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// rooksOpening rewards castling and occupying the 7th rank.
var rooksOpening = [64]float64{
	-25, -25, 5, 20, 20, 0, -10, -15,
	-70, -5, 10, 0, 0, -10, -15, -40,
	-30, -5, 0, 0, -20, -15, -20, -40,
	-20, 5, -5, 5, 0, -10, -15, -30,
	-20, 0, 35, 20, 20, 5, -10, -20,
	15, 50, 45, 20, 35, 0, -10, 0,
	30, 25, 60, 80, 60, 5, -5, -5,
	30, 25, 10, 60, 50, -10, -20, -15,
}

// rooksEndgame rewards the 7th rank and discourages huddling near the king.
var rooksEndgame = [64]float64{
	-30, -20, -5, 20, 20, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, 5, 5, 5, 5, 5,
	10, 10, 10, 10, 10, 10, 10, 10,
	35, 35, 35, 35, 35, 35, 35, 35,
	15, 15, 15, 15, 15, 15, 15, 15,
}

// queensOpening nudges the queen off the back rank.
var queensOpening = [64]float64{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 10, 5, -5,
	-5, 10, 5, 5, 5, 15, 10, -5,
	-10, 10, 5, 5, 5, 15, 10, -5,
	-10, 10, 0, 0, 10, 10, 10, -5,
	-20, -10, -10, -5, -5, -5, -5, -10,
}

// queensEndgame centralises the queen once material thins out.
var queensEndgame = [64]float64{
	-50, -35, -20, -10, -10, -20, -35, -50,
	-30, -25, -15, -15, -15, -15, -20, -15,
	5, 10, 15, 10, 10, 15, -10, -15,
	20, 30, 35, 35, 35, 30, 20, 10,
	35, 40, 40, 50, 50, 30, 20, 20,
	10, 20, 35, 50, 45, 10, 10, -10,
	0, 30, 20, 50, 50, 30, 20, -5,
	5, 10, 10, 25, 25, 10, 10, 0,
}

// kingsOpening pushes the king toward castling and off the open centre.
var kingsOpening = [64]float64{
	20, 50, 10, -25, -10, 12, 50, 20,
	5, 5, -10, -40, -40, -10, 5, 0,
	-25, -15, -30, -45, -45, -30, -15, -20,
	-50, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

// kingsEndgame pushes the king to the centre once the board has emptied.
var kingsEndgame = [64]float64{
	-45, -30, -30, -30, -30, -30, -35, -45,
	-30, -25, 0, 0, 0, 0, -25, -30,
	-30, -5, 15, 20, 20, 15, -5, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// pstOpening and pstEndgame index the tables by board.PieceType (Pawn..King).
var pstOpening = [6]*[64]float64{&pawnsOpening, &knightsOpening, &bishopsOpening, &rooksOpening, &queensOpening, &kingsOpening}
var pstEndgame = [6]*[64]float64{&pawnsEndgame, &knightsEndgame, &bishopsEndgame, &rooksEndgame, &queensEndgame, &kingsEndgame}
