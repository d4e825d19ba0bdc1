package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare     color.RGBA
	DarkSquare      color.RGBA
	SelectedOutline color.RGBA
	MoveColor       color.RGBA
	CaptureColor    color.RGBA
	BureaucratColor color.RGBA
	LastMoveColor   color.RGBA
	CheckColor      color.RGBA
	Background      color.RGBA
	CoordColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:     color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:      color.RGBA{181, 136, 99, 255},  // Brown
		SelectedOutline: color.RGBA{247, 247, 105, 255}, // Yellow
		MoveColor:       color.RGBA{0, 255, 0, 100},
		CaptureColor:    color.RGBA{255, 0, 0, 100},
		BureaucratColor: color.RGBA{0, 0, 255, 100},
		LastMoveColor:   color.RGBA{180, 190, 100, 90},
		CheckColor:      color.RGBA{255, 100, 100, 180},
		Background:      color.RGBA{40, 44, 52, 255},
		CoordColor:      color.RGBA{90, 70, 50, 200},
	}
}

// Renderer handles all drawing of the board area.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	view       boardView
	showCoords bool
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		view:       boardView{squareSize: squareSize},
		showCoords: true,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped rotates the board half a turn so Black sits at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.view.flipped = flipped
}

// Flipped reports whether the board is drawn from Black's side.
func (r *Renderer) Flipped() bool {
	return r.view.flipped
}

// SetShowCoordinates toggles the file and rank labels.
func (r *Renderer) SetShowCoordinates(show bool) {
	r.showCoords = show
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the squares and, if enabled, the coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.view.squareSize
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			x, y := r.SquareToScreen(board.NewSquare(row, col))
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), c, false)
		}
	}

	if r.showCoords {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates labels files along the bottom edge and ranks along the left.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(10 * r.scale)
	if face == nil {
		return
	}
	size := r.view.squareSize
	for i := 0; i < board.Size; i++ {
		// Squares in the bottom display row and left display column.
		fileSq := r.view.screenToSquare(i*size, (board.Size-1)*size)
		rankSq := r.view.screenToSquare(0, i*size)

		file := string(rune('a' + fileSq.Col()))
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(i*size+size-9)), float64(r.s(board.Size*size-14)))
		op.ColorScale.ScaleWithColor(r.theme.CoordColor)
		text.Draw(screen, file, face, op)

		rank := rankSq.String()[1:]
		op = &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(3)), float64(r.s(i*size+2)))
		op.ColorScale.ScaleWithColor(r.theme.CoordColor)
		text.Draw(screen, rank, face, op)
	}
}

// DrawLastMove tints the origin and destination of the previous move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, m board.Move) {
	r.highlightSquare(screen, m.From, r.theme.LastMoveColor)
	r.highlightSquare(screen, m.To, r.theme.LastMoveColor)
}

// DrawTargets colours the legal destinations of the piece on from: blue for a
// Bureaucrat, red for captures and green otherwise.
func (r *Renderer) DrawTargets(screen *ebiten.Image, b *board.Board, from board.Square, targets board.SquareSet) {
	if from == board.NoSquare {
		return
	}
	mover := b.PieceAt(from)
	targets.ForEach(func(to board.Square) {
		c := r.theme.MoveColor
		switch {
		case mover.Kind() == board.Bureaucrat:
			c = r.theme.BureaucratColor
		case isCaptureTarget(b, mover, from, to):
			c = r.theme.CaptureColor
		}
		r.highlightSquare(screen, to, c)
	})
}

// isCaptureTarget reports whether moving mover from from to to takes a piece,
// including a pawn's diagonal step onto an empty square (en passant).
func isCaptureTarget(b *board.Board, mover board.Piece, from, to board.Square) bool {
	target := b.PieceAt(to)
	if target != board.NoPiece {
		return target.Color() != mover.Color()
	}
	return mover.Kind() == board.Pawn && from.Col() != to.Col()
}

// DrawSelection outlines the selected square.
func (r *Renderer) DrawSelection(screen *ebiten.Image, sq board.Square) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.StrokeRect(screen, r.s(x)+r.s(2), r.s(y)+r.s(2), r.s(r.view.squareSize-4), r.s(r.view.squareSize-4),
		r.s(3), r.theme.SelectedOutline, false)
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	if kingSq != board.NoSquare {
		r.highlightSquare(screen, kingSq, r.theme.CheckColor)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.view.squareSize), r.s(r.view.squareSize), c, false)
}

// DrawPieces draws every piece except the one being dragged from skip.
// Shake offsets from anims are applied when anims is non-nil.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, skip board.Square, anims *AnimationManager) {
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		if sq == skip {
			continue
		}
		piece := b.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}

		x, y := r.SquareToScreen(sq)
		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(sq)
			x += int(offsetX)
			y += int(offsetY)
		}
		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)))
	}
}

// DrawDraggedPiece draws the piece being dragged centred on the cursor.
// mouseX, mouseY are in logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}
	half := r.view.squareSize / 2
	r.sprites.DrawPieceAt(screen, piece, int(r.s(mouseX-half)), int(r.s(mouseY-half)))
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return r.view.squareToScreen(sq)
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	return r.view.screenToSquare(x, y)
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return r.view.boardSize()
}

// SquareSize returns the size of one square in logical pixels.
func (r *Renderer) SquareSize() int {
	return r.view.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
