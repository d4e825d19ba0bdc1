package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	// Sized faces are cached; the panel asks for the same sizes every frame.
	regularFaces = map[float64]*text.GoTextFace{}
	boldFaces    = map[float64]*text.GoTextFace{}
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
)

func init() {
	initFonts()
}

func initFonts() {
	var err error
	regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
	}
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
	}
}

func cachedFace(src *text.GoTextFaceSource, cache map[float64]*text.GoTextFace, size float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	if f, ok := cache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: src, Size: size}
	cache[size] = f
	return f
}

// GetRegularFace returns the regular font face.
func GetRegularFace() *text.GoTextFace {
	return cachedFace(regularSource, regularFaces, defaultFontSize)
}

// GetBoldFace returns the bold font face.
func GetBoldFace() *text.GoTextFace {
	return cachedFace(boldSource, boldFaces, titleFontSize)
}

// GetFaceWithSize returns a regular face with a custom size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	return cachedFace(regularSource, regularFaces, size)
}

// GetBoldFaceWithSize returns a bold face with a custom size.
func GetBoldFaceWithSize(size float64) *text.GoTextFace {
	return cachedFace(boldSource, boldFaces, size)
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
