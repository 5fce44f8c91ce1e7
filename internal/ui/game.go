package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/schmittie/chessgo/internal/board"
	"github.com/schmittie/chessgo/internal/config"
	"github.com/schmittie/chessgo/internal/engine"
	"github.com/schmittie/chessgo/internal/storage"
)

// GameMode represents the current game mode.
type GameMode int

const (
	ModeHumanVsHuman GameMode = iota
	ModeHumanVsComputer
)

// Game implements ebiten.Game interface.
type Game struct {
	// Core game state
	position       *board.Position
	moveHistory    []board.Move
	sanHistory     []string
	positionHashes []uint64 // history of position hashes, for repetition detection

	// UI state
	selectedSquare board.Square
	legalMoves     *board.MoveList
	dragging       bool
	dragPiece      board.Piece
	dragSquare     board.Square
	lastMove       board.Move

	// Game settings
	mode        GameMode
	difficulty  config.Difficulty
	username    string
	playerColor board.Color // which color the human plays

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler

	// Search
	searcher   *engine.Searcher
	aiThinking bool
	aiMove     chan board.Move

	// Game state
	gameOver   bool
	gameResult string

	// HiDPI scaling
	scale float64
}

// NewGame creates a new chess game.
func NewGame() *Game {
	g := &Game{
		position:       board.NewPosition(),
		selectedSquare: board.NoSquare,
		mode:           ModeHumanVsComputer,
		difficulty:     config.Medium,
		username:       "Player",
		playerColor:    board.White,
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
		searcher:       engine.NewSearcher(),
		aiMove:         make(chan board.Move, 1),
	}

	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	g.loadPreferences()

	g.position.UpdateCheckers()
	g.positionHashes = []uint64{g.position.Hash}

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	g.username = g.prefs.Username
	g.difficulty = g.prefs.Difficulty
	g.mode = GameMode(g.prefs.GameMode)

	if g.prefs.PlayerColor == storage.ColorBlack {
		g.playerColor = board.Black
		g.renderer.SetFlipped(true)
	} else {
		g.playerColor = board.White
		g.renderer.SetFlipped(false)
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Username = g.username
	g.prefs.Difficulty = g.difficulty
	g.prefs.GameMode = storage.GameMode(g.mode)

	if g.playerColor == board.Black {
		g.prefs.PlayerColor = storage.ColorBlack
	} else {
		g.prefs.PlayerColor = storage.ColorWhite
	}

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()

	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}
	if IsKeyJustPressed(ebiten.KeyDigit1) {
		g.SetDifficulty(config.Easy)
	}
	if IsKeyJustPressed(ebiten.KeyDigit2) {
		g.SetDifficulty(config.Medium)
	}
	if IsKeyJustPressed(ebiten.KeyDigit3) {
		g.SetDifficulty(config.Hard)
	}
	if IsKeyJustPressed(ebiten.KeyTab) {
		g.ToggleModeAction()
	}
	if IsKeyJustPressed(ebiten.KeyF) {
		if g.playerColor == board.White {
			g.SetPlayerColor(board.Black)
		} else {
			g.SetPlayerColor(board.White)
		}
	}

	g.handleBoardInput()
	g.checkAIMove()

	return nil
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	if g.position.InCheck() {
		g.renderer.DrawCheck(screen, g.position.KingSquare[g.position.SideToMove])
	}

	g.renderer.DrawHighlights(screen, g.selectedSquare, g.legalMoves, g.lastMove)
	g.renderer.DrawPieces(screen, g.position, g.dragging, g.dragSquare)

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	g.drawStatusLine(screen)
}

// drawStatusLine draws a single line of status text below the board: whose
// turn it is, the difficulty, and the game result once the game is over.
func (g *Game) drawStatusLine(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	status := fmt.Sprintf("%s to move | difficulty: %s", g.position.SideToMove, g.difficulty)
	if g.aiThinking {
		status = "thinking..."
	}
	if g.gameOver {
		status = g.gameResult
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(scaledD(8, g.scale), scaledD(float64(BoardSize)+6, g.scale))
	op.ColorScale.ScaleWithColor(g.renderer.Theme().TextColor)
	text.Draw(screen, status, face, op)
}

// scaledD scales a logical coordinate by the HiDPI device scale.
func scaledD(v, scale float64) float64 {
	if scale < 1.0 {
		scale = 1.0
	}
	return v * scale
}

// Layout returns the game's screen dimensions, scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	if g.gameOver || g.aiThinking {
		return
	}
	if g.mode == ModeHumanVsComputer && g.position.SideToMove != g.playerColor {
		return
	}

	mx, my := g.input.MousePosition()
	if mx >= BoardSize || my >= BoardSize {
		return
	}

	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}

		piece := g.position.PieceAt(sq)
		if piece != board.NoPiece && piece.Color() == g.position.SideToMove {
			g.selectSquare(sq)
			g.startDrag(sq)
			return
		}

		if g.selectedSquare != board.NoSquare && g.legalMoves != nil {
			move := g.findMove(g.selectedSquare, sq)
			if move != board.NoMove {
				g.makeMove(move)
				return
			}
		}

		g.clearSelection()
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
	}
}

// selectSquare selects a square and generates legal moves from it.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.legalMoves = g.getLegalMovesFrom(sq)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.legalMoves = nil
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// startDrag begins dragging a piece.
func (g *Game) startDrag(sq board.Square) {
	g.dragging = true
	g.dragPiece = g.position.PieceAt(sq)
	g.dragSquare = sq
}

// handleDragRelease handles releasing a dragged piece.
func (g *Game) handleDragRelease(mx, my int) {
	targetSq := g.renderer.ScreenToSquare(mx, my)

	if targetSq != board.NoSquare && g.legalMoves != nil {
		move := g.findMove(g.dragSquare, targetSq)
		if move != board.NoMove {
			g.makeMove(move)
			return
		}
	}

	g.clearSelection()
}

// getLegalMovesFrom returns all legal moves from the given square.
func (g *Game) getLegalMovesFrom(sq board.Square) *board.MoveList {
	allMoves := g.position.GenerateLegalMoves()
	filtered := board.NewMoveList()

	for i := 0; i < allMoves.Len(); i++ {
		move := allMoves.Get(i)
		if move.From() == sq {
			filtered.Add(move)
		}
	}
	return filtered
}

// findMove finds a legal move from src to dst, defaulting promotions to a
// queen and treating a king dragged onto its own rook as castling.
func (g *Game) findMove(src, dst board.Square) board.Move {
	if g.legalMoves == nil {
		return board.NoMove
	}

	for i := 0; i < g.legalMoves.Len(); i++ {
		move := g.legalMoves.Get(i)
		if move.From() == src && move.To() == dst {
			if move.IsPromotion() {
				for j := 0; j < g.legalMoves.Len(); j++ {
					m := g.legalMoves.Get(j)
					if m.From() == src && m.To() == dst && m.Promotion() == board.Queen {
						return m
					}
				}
			}
			return move
		}

		if move.IsCastling() && move.From() == src {
			if (src == board.E1 && dst == board.H1 && move.To() == board.G1) ||
				(src == board.E8 && dst == board.H8 && move.To() == board.G8) {
				return move
			}
			if (src == board.E1 && dst == board.A1 && move.To() == board.C1) ||
				(src == board.E8 && dst == board.A8 && move.To() == board.C8) {
				return move
			}
		}
	}

	return board.NoMove
}

// makeMove applies a move to the game.
func (g *Game) makeMove(m board.Move) {
	san := g.moveToSAN(m)
	g.sanHistory = append(g.sanHistory, san)

	g.position.MakeMove(m)
	g.moveHistory = append(g.moveHistory, m)
	g.lastMove = m
	g.positionHashes = append(g.positionHashes, g.position.Hash)

	g.clearSelection()
	g.position.UpdateCheckers()

	g.checkGameEnd()

	if !g.gameOver && g.mode == ModeHumanVsComputer && g.position.SideToMove != g.playerColor {
		g.startAIThinking()
	}
}

// moveToSAN converts a move to SAN notation.
func (g *Game) moveToSAN(m board.Move) string {
	return m.ToSAN(g.position)
}

// checkGameEnd checks if the game is over.
func (g *Game) checkGameEnd() {
	switch {
	case g.position.IsCheckmate():
		g.gameOver = true
		if g.position.SideToMove == board.White {
			g.gameResult = "Black wins by checkmate!"
		} else {
			g.gameResult = "White wins by checkmate!"
		}
	case g.position.IsStalemate():
		g.gameOver = true
		g.gameResult = "Draw by stalemate"
	case g.isThreefoldRepetition():
		g.gameOver = true
		g.gameResult = "Draw by threefold repetition"
	case g.position.HalfMoveClock >= 100:
		g.gameOver = true
		g.gameResult = "Draw by 50-move rule"
	}

	if g.gameOver {
		g.recordGame()
	}
}

// recordGame persists the finished game's outcome to storage.
func (g *Game) recordGame() {
	if g.storage == nil {
		return
	}

	result := storage.GameResult{
		Mode:       storage.GameMode(g.mode),
		Difficulty: g.difficulty,
	}
	switch {
	case g.position.IsCheckmate():
		result.Won = g.position.SideToMove != g.playerColor
	default:
		result.Draw = true
	}

	if err := g.storage.RecordGame(result); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
}

// isThreefoldRepetition checks if the current position has occurred 3 times.
func (g *Game) isThreefoldRepetition() bool {
	if len(g.positionHashes) < 5 {
		return false
	}

	currentHash := g.position.Hash
	count := 0
	for _, h := range g.positionHashes {
		if h == currentHash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// startAIThinking starts the AI search in a goroutine.
func (g *Game) startAIThinking() {
	if g.position.SideToMove == g.playerColor {
		log.Printf("ERROR: startAIThinking called but SideToMove is %v (player's turn)", g.position.SideToMove)
		return
	}

	g.aiThinking = true
	pos := g.position.Copy()
	side := g.position.SideToMove
	depth := g.difficulty.Depth()

	go func() {
		move, ok := g.searcher.ChooseMove(pos, side, depth)
		if !ok {
			move = board.NoMove
		}
		g.aiMove <- move
	}()
}

// checkAIMove checks if the AI has made a move.
func (g *Game) checkAIMove() {
	if !g.aiThinking {
		return
	}

	select {
	case move := <-g.aiMove:
		g.aiThinking = false
		if move == board.NoMove {
			g.checkGameEnd()
			return
		}
		g.makeMove(move)
	default:
	}
}

// NewGameAction resets the game to the starting position.
func (g *Game) NewGameAction() {
	g.position = board.NewPosition()
	g.moveHistory = nil
	g.sanHistory = nil
	g.positionHashes = []uint64{g.position.Hash}
	g.lastMove = board.NoMove
	g.clearSelection()
	g.gameOver = false
	g.gameResult = ""
	g.aiThinking = false
	g.position.UpdateCheckers()

	select {
	case <-g.aiMove:
	default:
	}

	if g.mode == ModeHumanVsComputer && g.playerColor == board.Black {
		g.startAIThinking()
	}
}

// ToggleModeAction toggles between Human vs Human and Human vs Computer.
func (g *Game) ToggleModeAction() {
	if g.mode == ModeHumanVsHuman {
		g.mode = ModeHumanVsComputer
	} else {
		g.mode = ModeHumanVsHuman
	}
	g.savePreferences()
}

// SetPlayerColor sets which color the human player controls, flipping the
// board so the player's pieces are drawn at the bottom.
func (g *Game) SetPlayerColor(color board.Color) {
	g.playerColor = color
	g.renderer.SetFlipped(color == board.Black)
	g.savePreferences()
}

// PlayerColor returns the color the human player controls.
func (g *Game) PlayerColor() board.Color {
	return g.playerColor
}

// SetDifficulty sets the AI difficulty.
func (g *Game) SetDifficulty(d config.Difficulty) {
	g.difficulty = d
	g.savePreferences()
}

// Position returns the current position.
func (g *Game) Position() *board.Position {
	return g.position
}

// MoveHistory returns the move history.
func (g *Game) MoveHistory() []board.Move {
	return g.moveHistory
}

// SANHistory returns the SAN move history.
func (g *Game) SANHistory() []string {
	return g.sanHistory
}

// GameMode returns the current game mode.
func (g *Game) GameMode() GameMode {
	return g.mode
}

// Difficulty returns the current AI difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// GameOver returns true if the game is over.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// GameResult returns the game result string.
func (g *Game) GameResult() string {
	return g.gameResult
}

// IsAIThinking returns true if the AI is currently thinking.
func (g *Game) IsAIThinking() bool {
	return g.aiThinking
}

// Username returns the current username.
func (g *Game) Username() string {
	return g.username
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
