package ui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	lineWidth      = 1
	minPointRadius = 0.75 // keep far particles visible as at least a dot
)

// withAlpha converts c to a straight-alpha color at the given opacity.
func withAlpha(c colorful.Color, opacity float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity*255 + 0.5)}
}
