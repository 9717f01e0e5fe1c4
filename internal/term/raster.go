// Package term renders the particle field into a terminal with tcell. Each
// character cell carries two vertically stacked pixels drawn as an upper
// half block, so the pixel grid is cols × rows*2.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const halfBlock = '▀'

// CellWriter is the part of tcell.Screen the canvas flushes into.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas is a blendable pixel grid backed by colorful colors.
type Canvas struct {
	Cols, Rows int
	Background colorful.Color
	px         []colorful.Color
}

func NewCanvas(cols, rows int, bg colorful.Color) *Canvas {
	c := &Canvas{Background: bg}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates for a cols × rows cell area and clears it.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.Cols, c.Rows = cols, rows
	n := cols * rows * 2
	if cap(c.px) < n {
		c.px = make([]colorful.Color, n)
	}
	c.px = c.px[:n]
	c.Clear()
}

// Width and Height are the pixel dimensions.
func (c *Canvas) Width() int  { return c.Cols }
func (c *Canvas) Height() int { return c.Rows * 2 }

func (c *Canvas) Clear() {
	for i := range c.px {
		c.px[i] = c.Background
	}
}

// At returns the pixel at (x, y); out of range reads the background.
func (c *Canvas) At(x, y int) colorful.Color {
	if !c.inside(x, y) {
		return c.Background
	}
	return c.px[y*c.Cols+x]
}

// Plot blends col into the pixel at (x, y) by opacity in [0,1].
func (c *Canvas) Plot(x, y int, col colorful.Color, opacity float64) {
	if !c.inside(x, y) || opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	i := y*c.Cols + x
	c.px[i] = c.px[i].BlendRgb(col, opacity)
}

// Line draws a Bresenham segment between two pixel positions.
func (c *Canvas) Line(x0, y0, x1, y1 int, col colorful.Color, opacity float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Plot(x0, y0, col, opacity)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Dot fills a disc of radius r around (x, y). Radii under one pixel still
// light the center pixel.
func (c *Canvas) Dot(x, y int, r float64, col colorful.Color) {
	ri := int(r)
	for oy := -ri; oy <= ri; oy++ {
		for ox := -ri; ox <= ri; ox++ {
			if float64(ox*ox+oy*oy) <= r*r || (ox == 0 && oy == 0) {
				c.Plot(x+ox, y+oy, col, 1)
			}
		}
	}
}

// Flush writes every cell as an upper half block: the foreground is the top
// pixel and the background the bottom one.
func (c *Canvas) Flush(w CellWriter) {
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			top := c.px[(row*2)*c.Cols+col]
			bottom := c.px[(row*2+1)*c.Cols+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			w.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.Cols && y >= 0 && y < c.Rows*2
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
