// Package ui implements the 10x10 board UI using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		scale:       1.0,
	}
	sm.loadPieces()
	return sm
}

// SetScale sets the HiDPI scale factor used when drawing.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// Token fill and rim colours per side.
var (
	whiteToken = [2]string{"#f4f1ea", "#3a3a3a"}
	blackToken = [2]string{"#2b2b2b", "#d8d8d8"}
)

// tokenSVG builds the disc drawn under a piece letter. Royal kinds get a
// gold inner ring, their heirs a dashed one.
func tokenSVG(p board.Piece) string {
	colors := whiteToken
	if p.Color() == board.Black {
		colors = blackToken
	}

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">`)
	fmt.Fprintf(&sb, `<circle cx="32" cy="32" r="27" fill="%s" stroke="%s" stroke-width="3"/>`, colors[0], colors[1])
	switch p.Kind() {
	case board.King, board.Queen:
		sb.WriteString(`<circle cx="32" cy="32" r="22" fill="none" stroke="#c9a227" stroke-width="2.5"/>`)
	case board.Prince, board.Princess:
		sb.WriteString(`<circle cx="32" cy="32" r="22" fill="none" stroke="#c9a227" stroke-width="2" stroke-dasharray="4 3"/>`)
	case board.Bureaucrat:
		sb.WriteString(`<rect x="14" y="14" width="36" height="36" fill="none" stroke="#4060c0" stroke-width="2"/>`)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

// loadPieces rasterises one token per piece and stamps the kind letter on it.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)
	face := GetBoldFaceWithSize(float64(renderSize) * 0.45)

	for _, c := range []board.Color{board.White, board.Black} {
		for k := board.PieceKind(0); k < board.NoKind; k++ {
			piece := board.NewPiece(k, c)
			img, err := rasterizeSVG(tokenSVG(piece), renderSize)
			if err != nil {
				log.Printf("Failed to render token for %v: %v", piece, err)
				continue
			}
			sprite := ebiten.NewImageFromImage(img)
			if face != nil {
				drawLetter(sprite, string(k.Letter()), face, renderSize, letterColor(c))
			}
			sm.pieces[piece] = sprite
		}
	}
}

// rasterizeSVG renders an SVG document into a square RGBA image.
func rasterizeSVG(doc string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

func letterColor(c board.Color) color.RGBA {
	if c == board.White {
		return color.RGBA{34, 34, 34, 255}
	}
	return color.RGBA{240, 240, 240, 255}
}

func drawLetter(dst *ebiten.Image, letter string, face *text.GoTextFace, size int, c color.RGBA) {
	w, h := MeasureText(letter, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(size)/2-w/2, float64(size)/2-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, letter, face, op)
}

// DrawPieceAt draws a piece with its top-left corner at the given pixel
// coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sm.drawSized(screen, p, x, y, sm.scale)
}

// DrawPieceScaled draws a piece enlarged by factor, e.g. in the promotion
// picker.
func (sm *SpriteManager) DrawPieceScaled(screen *ebiten.Image, p board.Piece, x, y int, factor float64) {
	sm.drawSized(screen, p, x, y, sm.scale*factor)
}

func (sm *SpriteManager) drawSized(screen *ebiten.Image, p board.Piece, x, y int, scale float64) {
	if p == board.NoPiece {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	s := scale / sm.renderScale
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
