package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

// Promotion picker layout
const (
	pickerCols    = 5
	pickerCell    = 72
	pickerGap     = 8
	pickerPadding = 24
	pickerTitleH  = 40
)

var (
	modalOverlay = color.RGBA{0, 0, 0, 150}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// promotionKeys lets the player pick with the kind's letter.
var promotionKeys = map[ebiten.Key]board.PieceKind{
	ebiten.KeyQ: board.Queen,
	ebiten.KeyR: board.Rook,
	ebiten.KeyB: board.Bishop,
	ebiten.KeyN: board.Knight,
	ebiten.KeyC: board.Bureaucrat,
	ebiten.KeyJ: board.Jester,
	ebiten.KeyS: board.Squire,
	ebiten.KeyL: board.Paladin,
	ebiten.KeyV: board.Prince,
	ebiten.KeyW: board.Princess,
}

type pickerOption struct {
	X, Y, W, H int
	Kind       board.PieceKind
	hovered    bool
}

// PromotionPicker is the modal shown while a pawn waits for its new kind.
// It cannot be dismissed without choosing.
type PromotionPicker struct {
	visible bool
	color   board.Color
	x, y    int
	w, h    int
	options []*pickerOption
	onPick  func(board.PieceKind)
}

// NewPromotionPicker lays out one cell per promotable kind, centred on the
// board.
func NewPromotionPicker() *PromotionPicker {
	rows := (len(board.PromotionKinds) + pickerCols - 1) / pickerCols
	pp := &PromotionPicker{
		w: pickerCols*pickerCell + (pickerCols-1)*pickerGap + pickerPadding*2,
		h: pickerTitleH + rows*pickerCell + (rows-1)*pickerGap + pickerPadding*2,
	}
	pp.x = (BoardSize - pp.w) / 2
	pp.y = (ScreenHeight - pp.h) / 2

	for i, k := range board.PromotionKinds {
		col, row := i%pickerCols, i/pickerCols
		pp.options = append(pp.options, &pickerOption{
			X:    pp.x + pickerPadding + col*(pickerCell+pickerGap),
			Y:    pp.y + pickerPadding + pickerTitleH + row*(pickerCell+pickerGap),
			W:    pickerCell,
			H:    pickerCell,
			Kind: k,
		})
	}
	return pp
}

// Show opens the picker for c. onPick receives the chosen kind.
func (pp *PromotionPicker) Show(c board.Color, onPick func(board.PieceKind)) {
	pp.visible = true
	pp.color = c
	pp.onPick = onPick
}

// Hide closes the picker without choosing.
func (pp *PromotionPicker) Hide() {
	pp.visible = false
	pp.onPick = nil
}

// IsVisible reports whether the picker is open.
func (pp *PromotionPicker) IsVisible() bool {
	return pp.visible
}

// AnyButtonHovered returns true if a cell is under the cursor.
func (pp *PromotionPicker) AnyButtonHovered() bool {
	for _, o := range pp.options {
		if o.hovered {
			return true
		}
	}
	return false
}

// Update handles clicks and letter keys.
func (pp *PromotionPicker) Update(input *InputHandler) {
	if !pp.visible {
		return
	}
	for _, o := range pp.options {
		o.hovered = input.IsInBounds(o.X, o.Y, o.W, o.H)
		if o.hovered && input.IsLeftJustPressed() {
			pp.pick(o.Kind)
			return
		}
	}
	for key, kind := range promotionKeys {
		if IsKeyJustPressed(key) {
			pp.pick(kind)
			return
		}
	}
}

func (pp *PromotionPicker) pick(k board.PieceKind) {
	onPick := pp.onPick
	pp.Hide()
	if onPick != nil {
		onPick(k)
	}
}

// Draw renders the picker over the board.
func (pp *PromotionPicker) Draw(screen *ebiten.Image, sprites *SpriteManager) {
	if !pp.visible {
		return
	}

	fillRect(screen, 0, 0, BoardSize, ScreenHeight, modalOverlay)
	fillRect(screen, pp.x, pp.y, pp.w, pp.h, modalBg)
	strokeRect(screen, pp.x, pp.y, pp.w, pp.h, 2, modalBorder)

	title := "Choose promotion:"
	tw, _ := measure(title, true, titleFontSize)
	drawTextSized(screen, title, float64(pp.x)+float64(pp.w)/2-tw/2, float64(pp.y+pickerPadding),
		true, titleFontSize, textPrimary)

	pieceSize := sprites.Size()
	factor := float64(pickerCell-16) / float64(pieceSize)
	for _, o := range pp.options {
		bg := buttonBg
		border := buttonBorder
		if o.hovered {
			bg = buttonHoverBg
			border = accentColor
		}
		fillRect(screen, o.X, o.Y, o.W, o.H, bg)
		strokeRect(screen, o.X, o.Y, o.W, o.H, 1, border)
		sprites.DrawPieceScaled(screen, board.NewPiece(o.Kind, pp.color),
			int(scaleF(o.X+8)), int(scaleF(o.Y+8)), factor)
	}
}
