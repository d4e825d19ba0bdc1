package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
	"github.com/SiddhanthDubey/chess2.0/internal/game"
	"github.com/SiddhanthDubey/chess2.0/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / board.Size
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the panel, toasts and modals.
var UIScale float64 = 1.0

// WindowScale multiplies the window size chosen at startup.
var WindowScale float64 = 1.0

// Config carries the startup options resolved by the host.
type Config struct {
	// Storage may be nil, in which case nothing is persisted.
	Storage *storage.Storage
	// Mute and NoFlip override the stored preferences for this session.
	Mute   bool
	NoFlip bool
}

// Game implements ebiten.Game on top of a game.Game.
type Game struct {
	match *game.Game

	// Drag state
	dragging   bool
	dragPiece  board.Piece
	dragSquare board.Square

	autoFlip bool
	recorded bool // finished game already written to storage

	storage *storage.Storage
	prefs   *storage.Preferences
	stats   *storage.GameStats

	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager
	picker   *PromotionPicker

	// HiDPI scaling
	scale float64
}

// NewGame creates the UI host and starts a fresh game.
func NewGame(cfg Config) *Game {
	g := &Game{
		match:      game.New(),
		dragSquare: board.NoSquare,
		storage:    cfg.Storage,
		renderer:   NewRenderer(SquareSize),
		input:      NewInputHandler(),
		feedback:   NewFeedbackManager(),
		picker:     NewPromotionPicker(),
		scale:      1.0,
	}
	g.panel = NewPanel(g)

	g.loadPreferences()
	g.loadStats()

	// Command-line overrides apply to this session only and are not saved.
	if cfg.Mute {
		g.feedback.Audio().SetEnabled(false)
	}
	if cfg.NoFlip {
		g.autoFlip = false
	}

	g.checkFirstLaunch()
	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.storage != nil {
		prefs, err := g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}

	g.autoFlip = g.prefs.AutoFlip
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
	g.feedback.Audio().SetVolume(g.prefs.Volume)
	g.renderer.SetShowCoordinates(g.prefs.ShowCoordinates)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

func (g *Game) loadStats() {
	if g.storage == nil {
		return
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}
	g.stats = stats
}

// checkFirstLaunch greets a new player once.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}
	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}
	g.feedback.Info("Welcome! Right-click cancels a selection, F flips the board")
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		log.Printf("Warning: Failed to mark first launch complete: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// The promotion picker blocks everything else until a kind is chosen.
	if g.picker.IsVisible() {
		g.picker.Update(g.input)
		g.updateCursor()
		return nil
	}

	if IsKeyJustPressed(ebiten.KeyF) {
		g.FlipAction()
	}
	if IsKeyJustPressed(ebiten.KeyM) {
		g.ToggleSoundAction()
	}

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var hovered bool
	if g.picker.IsVisible() {
		hovered = g.picker.AnyButtonHovered()
	} else {
		hovered = g.panel.AnyButtonHovered() || g.dragging
	}

	if hovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	screen.Fill(g.renderer.Theme().Background)

	b := g.match.Board()
	g.renderer.DrawBoard(screen)

	if last, ok := g.match.LastMove(); ok {
		g.renderer.DrawLastMove(screen, last.Move)
	}
	if st := g.match.Status(); st.Check || st.State == board.Checkmate {
		g.renderer.DrawCheck(screen, b.KingSquare(g.match.ToMove()))
	}

	selected := g.match.Selected()
	g.renderer.DrawTargets(screen, &b, selected, g.match.Targets())
	g.renderer.DrawSelection(screen, selected)

	skip := board.NoSquare
	if g.dragging {
		skip = g.dragSquare
	}
	g.renderer.DrawPieces(screen, &b, skip, g.feedback.Animations())
	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen)
	g.picker.Draw(screen, g.renderer.Sprites())
}

// Layout returns the game's screen dimensions in device pixels.
// Width follows the panel's collapsed state.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	width := ScreenWidth
	if g.panel != nil && g.panel.Collapsed() {
		width = BoardSize + CollapsedWidth
	}
	return int(float64(width) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	if g.match.Status().IsOver() {
		return
	}

	mx, my := g.input.MousePosition()

	if g.input.IsRightJustPressed() {
		g.clearSelection()
		return
	}

	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}

		if g.match.Targets().Has(sq) {
			g.submit(sq)
			return
		}
		// Clicking one of our own pieces (re)selects it and starts a drag.
		if g.match.Select(sq) {
			b := g.match.Board()
			g.startDrag(sq, b.PieceAt(sq))
			return
		}
		g.clearSelection()
		return
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
	}
}

// startDrag begins dragging a piece.
func (g *Game) startDrag(sq board.Square, p board.Piece) {
	g.dragging = true
	g.dragPiece = p
	g.dragSquare = sq
}

// clearSelection drops the selection and any drag in progress.
func (g *Game) clearSelection() {
	g.match.ClearSelection()
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// handleDragRelease drops the dragged piece. Releasing over the origin
// keeps the selection so the move can be finished with a second click.
func (g *Game) handleDragRelease(mx, my int) {
	g.dragging = false
	from := g.dragSquare
	to := g.renderer.ScreenToSquare(mx, my)
	if to == board.NoSquare || to == from {
		return
	}

	if g.match.Targets().Has(to) {
		g.submit(to)
		return
	}

	b := g.match.Board()
	g.feedback.OnInvalidMove(from, to, invalidMoveReason(&b, from, to))
	g.clearSelection()
}

// submit plays the selected piece to to.
func (g *Game) submit(to board.Square) {
	outcome := g.match.Submit(to)
	g.clearSelection()

	switch outcome {
	case game.Played:
		g.afterMove()
	case game.PromotionPending:
		c, _ := g.match.PendingPromotion()
		g.picker.Show(c, g.promote)
	}
}

// promote finishes a pending pawn move with the picked kind.
func (g *Game) promote(kind board.PieceKind) {
	if _, err := g.match.Promote(kind); err != nil {
		log.Printf("Warning: Promotion failed: %v", err)
		return
	}
	g.afterMove()
}

// afterMove gives feedback for the last move, flips the view and records
// the game once it is over.
func (g *Game) afterMove() {
	last, ok := g.match.LastMove()
	if !ok {
		return
	}
	st := g.match.Status()

	g.feedback.OnMoveMade(last.MoveResult)
	g.feedback.OnStatus(st)
	g.panel.ScrollToEnd()

	if g.autoFlip && !st.IsOver() {
		g.FlipAction()
	}
	if st.IsOver() {
		g.recordResult()
	}
}

// recordResult stores the finished game and refreshes the totals.
func (g *Game) recordResult() {
	if g.recorded || g.storage == nil {
		return
	}
	r, over := g.match.Result()
	if !over {
		return
	}
	g.recorded = true

	rec := storage.GameRecord{
		ID:       r.ID,
		Plies:    r.Plies,
		Started:  r.Started,
		Duration: r.Duration,
	}
	switch r.Status.State {
	case board.Checkmate:
		rec.Reason = storage.ReasonCheckmate
		rec.Winner = r.Status.Winner.String()
	case board.Stalemate:
		rec.Reason = storage.ReasonStalemate
	}

	if _, err := g.storage.RecordGame(rec); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	g.loadStats()
}

// NewGameAction abandons the current game and starts from the initial
// layout. Abandoned games are not recorded.
func (g *Game) NewGameAction() {
	g.match = game.New()
	g.recorded = false
	g.picker.Hide()
	g.clearSelection()
	g.feedback.Animations().Clear()
	g.renderer.SetFlipped(false)
}

// FlipAction turns the board half a turn.
func (g *Game) FlipAction() {
	g.renderer.SetFlipped(!g.renderer.Flipped())
	g.feedback.Animations().Clear()
}

// ToggleAutoFlipAction switches flipping after every move on or off.
func (g *Game) ToggleAutoFlipAction() {
	g.autoFlip = !g.autoFlip
	g.prefs.AutoFlip = g.autoFlip
	g.savePreferences()
}

// ToggleSoundAction mutes or unmutes sound effects.
func (g *Game) ToggleSoundAction() {
	enabled := !g.feedback.Audio().IsEnabled()
	g.feedback.Audio().SetEnabled(enabled)
	g.prefs.SoundEnabled = enabled
	g.savePreferences()
}

// AutoFlip reports whether the board flips after every move.
func (g *Game) AutoFlip() bool {
	return g.autoFlip
}

// SoundEnabled reports whether sound effects play.
func (g *Game) SoundEnabled() bool {
	return g.feedback.Audio().IsEnabled()
}

// History returns the plies of the current game.
func (g *Game) History() []game.Ply {
	return g.match.History()
}

// Status returns the current game status.
func (g *Game) Status() board.Status {
	return g.match.Status()
}

// ToMove returns the side to move.
func (g *Game) ToMove() board.Color {
	return g.match.ToMove()
}

// PromotionPending reports whether a pawn waits for its promotion kind.
func (g *Game) PromotionPending() bool {
	_, ok := g.match.PendingPromotion()
	return ok
}

// Elapsed returns the running time of the current game.
func (g *Game) Elapsed() time.Duration {
	return g.match.Elapsed()
}

// Stats returns the stored totals, or nil without storage.
func (g *Game) Stats() *storage.GameStats {
	return g.stats
}
