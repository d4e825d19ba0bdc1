// Package game runs a single game on top of the board rules: whose turn it
// is, what is selected, pending promotions and the final result.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

// Outcome describes what a submitted destination did.
type Outcome uint8

const (
	// Ignored means nothing was played and the selection was cleared.
	Ignored Outcome = iota
	// Played means the move was executed and the turn passed.
	Played
	// PromotionPending means a pawn reached the far rank and Promote must be
	// called before anything else can happen.
	PromotionPending
)

func (o Outcome) String() string {
	switch o {
	case Played:
		return "played"
	case PromotionPending:
		return "promotion pending"
	default:
		return "ignored"
	}
}

// Ply is one executed move in the game history.
type Ply struct {
	Number int
	Color  board.Color
	board.MoveResult
}

// String formats the ply for a move list, e.g. "3. R a1-a5".
func (p Ply) String() string {
	return fmt.Sprintf("%d. %v", p.Number, p.MoveResult)
}

// Result summarises a finished game.
type Result struct {
	ID       string
	Status   board.Status
	Plies    int
	Started  time.Time
	Duration time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithPromotionChooser makes promotions resolve synchronously through ch
// instead of pausing in the PromotionPending state.
func WithPromotionChooser(ch board.PromotionChooser) Option {
	return func(g *Game) {
		g.chooser = ch
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// pendingMove is a pawn move waiting for its promotion kind.
type pendingMove struct {
	from, to board.Square
	color    board.Color
}

// Game owns the board for one game. It is not safe for concurrent use.
type Game struct {
	id      string
	board   *board.Board
	toMove  board.Color
	status  board.Status
	chooser board.PromotionChooser
	now     func() time.Time

	selected board.Square
	targets  board.SquareSet
	pending  *pendingMove

	history []Ply
	started time.Time
	ended   time.Time
}

// New starts a game from the initial layout with White to move.
func New(opts ...Option) *Game {
	return NewFromBoard(board.NewBoard(), board.White, opts...)
}

// NewFromBoard starts a game from an arbitrary position. The game takes
// ownership of b.
func NewFromBoard(b *board.Board, toMove board.Color, opts ...Option) *Game {
	g := &Game{
		id:       uuid.New().String(),
		board:    b,
		toMove:   toMove,
		now:      time.Now,
		selected: board.NoSquare,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.started = g.now()
	g.status = g.board.Evaluate(g.toMove)
	if g.status.IsOver() {
		g.ended = g.started
	}
	log.Printf("[GAME] %s started, %v to move", g.id, g.toMove)
	return g
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id
}

// ToMove returns the color whose turn it is.
func (g *Game) ToMove() board.Color {
	return g.toMove
}

// Status returns the current status for the side to move.
func (g *Game) Status() board.Status {
	return g.status
}

// Board returns a copy of the current position.
func (g *Game) Board() board.Board {
	return *g.board
}

// Selected returns the selected square, or NoSquare.
func (g *Game) Selected() board.Square {
	return g.selected
}

// Targets returns the legal destinations of the selected piece.
func (g *Game) Targets() board.SquareSet {
	return g.targets
}

// LegalMoves returns the legal destinations of the piece on sq if it
// belongs to the side to move, and none otherwise.
func (g *Game) LegalMoves(sq board.Square) board.SquareSet {
	if g.status.IsOver() || g.pending != nil {
		return board.SquareSet{}
	}
	p := g.board.PieceAt(sq)
	if p == board.NoPiece || p.Color() != g.toMove {
		return board.SquareSet{}
	}
	return g.board.LegalMoves(sq)
}

// Select picks the piece on sq if it belongs to the side to move and
// caches its legal destinations. Anything else clears the selection.
func (g *Game) Select(sq board.Square) bool {
	g.ClearSelection()
	if g.status.IsOver() || g.pending != nil {
		return false
	}
	p := g.board.PieceAt(sq)
	if p == board.NoPiece || p.Color() != g.toMove {
		return false
	}
	g.selected = sq
	g.targets = g.board.LegalMoves(sq)
	return true
}

// ClearSelection drops the current selection.
func (g *Game) ClearSelection() {
	g.selected = board.NoSquare
	g.targets = board.SquareSet{}
}

// Submit plays the selected piece to to if to is one of its legal
// destinations. The selection is cleared either way.
func (g *Game) Submit(to board.Square) Outcome {
	from, targets := g.selected, g.targets
	g.ClearSelection()
	if from == board.NoSquare || !targets.Has(to) {
		return Ignored
	}

	p := g.board.PieceAt(from)
	if p.Kind() == board.Pawn && (to.Row() == 0 || to.Row() == board.Size-1) && g.chooser == nil {
		g.pending = &pendingMove{from: from, to: to, color: p.Color()}
		log.Printf("[MOVE] %v %v-%v awaiting promotion", p.Color(), from, to)
		return PromotionPending
	}

	g.execute(from, to, g.chooser)
	return Played
}

// Move selects from and submits to in one call.
func (g *Game) Move(from, to board.Square) Outcome {
	if !g.Select(from) {
		return Ignored
	}
	return g.Submit(to)
}

// PendingPromotion reports the color that must choose a promotion kind.
func (g *Game) PendingPromotion() (board.Color, bool) {
	if g.pending == nil {
		return board.NoColor, false
	}
	return g.pending.color, true
}

// Promote completes the pending pawn move with kind. kind must be one of
// board.PromotionKinds; anything else panics and leaves the promotion
// pending.
func (g *Game) Promote(kind board.PieceKind) (board.MoveResult, error) {
	if g.status.IsOver() {
		return board.MoveResult{}, ErrGameOver
	}
	if g.pending == nil {
		return board.MoveResult{}, ErrNoPendingPromotion
	}
	if !kind.IsPromotable() {
		panic(fmt.Sprintf("game: invalid promotion kind %v", kind))
	}
	pm := g.pending
	g.pending = nil
	return g.execute(pm.from, pm.to, board.PromotionFunc(func(board.Color) board.PieceKind {
		return kind
	})), nil
}

// execute applies the move, records it and hands the turn over.
func (g *Game) execute(from, to board.Square, chooser board.PromotionChooser) board.MoveResult {
	res := g.board.Apply(from, to, chooser)
	g.history = append(g.history, Ply{
		Number:     len(g.history) + 1,
		Color:      g.toMove,
		MoveResult: res,
	})
	log.Printf("[MOVE] %v %v", g.toMove, res)

	g.toMove = g.toMove.Other()
	g.status = g.board.Evaluate(g.toMove)
	if g.status.IsOver() {
		g.ended = g.now()
		log.Printf("[GAME] %s over: %v after %d plies", g.id, g.status, len(g.history))
	}
	return res
}

// LastMove returns the most recent ply.
func (g *Game) LastMove() (Ply, bool) {
	if len(g.history) == 0 {
		return Ply{}, false
	}
	return g.history[len(g.history)-1], true
}

// History returns the plies played so far.
func (g *Game) History() []Ply {
	out := make([]Ply, len(g.history))
	copy(out, g.history)
	return out
}

// Elapsed returns the time since the game started, frozen once it ends.
func (g *Game) Elapsed() time.Duration {
	if !g.ended.IsZero() {
		return g.ended.Sub(g.started)
	}
	return g.now().Sub(g.started)
}

// Result summarises the game. The second value is false while the game is
// still in progress.
func (g *Game) Result() (Result, bool) {
	r := Result{
		ID:       g.id,
		Status:   g.status,
		Plies:    len(g.history),
		Started:  g.started,
		Duration: g.Elapsed(),
	}
	return r, g.status.IsOver()
}
