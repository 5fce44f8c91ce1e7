// Command chessgo-tournament plays a batch of engine-vs-engine games between
// two search depths and reports aggregate results, the way the project's
// rollout scripts pitted PlayerDev against PlayerMiniMax across many games
// and tallied win rates.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/schmittie/chessgo/internal/board"
	"github.com/schmittie/chessgo/internal/engine"
)

var (
	games    = flag.Int("games", 20, "number of games to play")
	depthA   = flag.Int("depth-a", 2, "search depth for player A")
	depthB   = flag.Int("depth-b", 3, "search depth for player B")
	workers  = flag.Int("workers", 4, "number of games to run concurrently")
	maxMoves = flag.Int("max-moves", 200, "maximum plies per game before declaring a draw")
)

// result describes the outcome of one game from player A's point of view.
type result struct {
	index     int
	aIsWhite  bool
	outcome   board.TerminalOutcome
	plyCount  int
	pgnMoves  []string
	truncated bool
}

func main() {
	flag.Parse()

	sem := make(chan struct{}, *workers)
	resultsCh := make(chan result, *games)
	var wg sync.WaitGroup

	for i := 0; i < *games; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			resultsCh <- playGame(i, i%2 == 0)
		}(i)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var aWins, bWins, draws int
	for r := range resultsCh {
		switch {
		case r.outcome == board.Draw:
			draws++
		case r.outcome == board.WinForOther:
			// The side to move was just mated and the other side won. Games
			// start with White to move, so White was mated after an even
			// number of plies.
			whiteMated := r.plyCount%2 == 0
			if whiteMated == r.aIsWhite {
				bWins++
			} else {
				aWins++
			}
		}
		note := ""
		if r.truncated {
			note = " (move limit reached, scored as draw)"
		}
		log.Printf("game %d: A as %s, %d plies%s", r.index, colorLabel(r.aIsWhite), r.plyCount, note)
	}

	total := aWins + bWins + draws
	if total == 0 {
		fmt.Println("no games played")
		return
	}
	fmt.Printf("Total games played: %d\n", total)
	fmt.Printf("Player A (depth %d) wins: %.2f%% (%d)\n", *depthA, pct(aWins, total), aWins)
	fmt.Printf("Player B (depth %d) wins: %.2f%% (%d)\n", *depthB, pct(bWins, total), bWins)
	fmt.Printf("Draws:                   %.2f%% (%d)\n", pct(draws, total), draws)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func colorLabel(white bool) string {
	if white {
		return "White"
	}
	return "Black"
}

// playGame runs a single game between two independently-searching engines,
// each with its own Searcher instance so neither shares transient search
// state (its node counter) with the other.
func playGame(index int, aIsWhite bool) result {
	pos := board.NewPosition()
	searcherA := engine.NewSearcher()
	searcherB := engine.NewSearcher()

	var san []string
	ply := 0
	for ; ply < *maxMoves; ply++ {
		if pos.IsTerminal() {
			break
		}

		side := pos.SideToMove
		aToMove := (side == board.White) == aIsWhite
		var s *engine.Searcher
		var depth int
		if aToMove {
			s, depth = searcherA, *depthA
		} else {
			s, depth = searcherB, *depthB
		}

		move, ok := s.ChooseMove(pos, side, depth)
		if !ok {
			break
		}

		san = append(san, move.ToSAN(pos))
		pos.MakeMove(move)
		pos.UpdateCheckers()
	}

	r := result{
		index:    index,
		aIsWhite: aIsWhite,
		plyCount: ply,
		pgnMoves: san,
	}
	if pos.IsTerminal() {
		r.outcome = pos.TerminalResult()
	} else {
		r.outcome = board.Draw
		r.truncated = true
	}

	log.Printf("game %d PGN: %s", index, strings.Join(san, " "))
	return r
}
