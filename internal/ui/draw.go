package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Drawing helpers for panel, toasts and modals. Coordinates are logical
// pixels and get multiplied by UIScale here.

func scaleF(v int) float32 {
	return float32(float64(v) * UIScale)
}

func fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(h), c, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h int, width float32, c color.Color) {
	vector.StrokeRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(h), width*float32(UIScale), c, false)
}

func uiFace(bold bool, size float64) *text.GoTextFace {
	if bold {
		return GetBoldFaceWithSize(size * UIScale)
	}
	return GetFaceWithSize(size * UIScale)
}

// measure returns the logical size of s in the given face size.
func measure(s string, bold bool, size float64) (float64, float64) {
	w, h := MeasureText(s, uiFace(bold, size))
	return w / UIScale, h / UIScale
}

func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	drawTextSized(screen, s, float64(x), float64(y), false, defaultFontSize, c)
}

func drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	w, h := measure(s, false, defaultFontSize)
	drawTextSized(screen, s, float64(centerX)-w/2, float64(centerY)-h/2, false, defaultFontSize, c)
}

func drawTextSized(screen *ebiten.Image, s string, x, y float64, bold bool, size float64, c color.Color) {
	face := uiFace(bold, size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*UIScale, y*UIScale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
