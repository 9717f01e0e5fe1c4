package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawSegment strokes one connection. It is defined as a variable so tests
// can override it to capture draw calls.
var drawSegment = func(dst *ebiten.Image, x0, y0, x1, y1 float64, c color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, c, true)
}

// drawPoint fills one particle. It can be overridden in tests.
var drawPoint = func(dst *ebiten.Image, x, y, r float64, c color.Color) {
	if r < minPointRadius {
		r = minPointRadius
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), c, true)
}
