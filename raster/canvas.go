// Package raster draws engine frames onto TinyGo display drivers.
//
// Canvas turns any drivers.Displayer into an eyes.Renderer using tinydraw
// primitives. Bitmap is an in-memory 1-bit display for headless use, and
// the terminal and LED matrix sinks build on it.
package raster

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"

	"nifri2/robo-eyes/eyes"
)

var (
	Off = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	On  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type bufferClearer interface {
	ClearBuffer()
}

// Canvas renders onto a driver display. Present calls the display's
// Display to push the buffer out.
type Canvas struct {
	display drivers.Displayer
	ink     [2]color.RGBA
}

var _ eyes.Renderer = (*Canvas)(nil)

func NewCanvas(display drivers.Displayer) *Canvas {
	return &Canvas{
		display: display,
		ink:     [2]color.RGBA{eyes.Background: Off, eyes.Foreground: On},
	}
}

// SetInk changes the colours used for the two monochrome inks, for
// displays that want something other than white on black.
func (c *Canvas) SetInk(background, foreground color.RGBA) {
	c.ink[eyes.Background] = background
	c.ink[eyes.Foreground] = foreground
}

func (c *Canvas) Clear() {
	if bc, ok := c.display.(bufferClearer); ok && c.ink[eyes.Background] == Off {
		bc.ClearBuffer()
		return
	}
	w, h := c.display.Size()
	_ = tinydraw.FilledRectangle(c.display, 0, 0, w, h, c.ink[eyes.Background])
}

// FillRoundRect fills a rectangle with quarter-circle corners. The radius is
// clamped so the corners fit, as the GFX-style libraries do.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, ink eyes.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = min(max(r, 0), (min(w, h)-1)/2)
	col := c.color(ink)

	// Both bars error out when collapsed to zero width; the corners cover it.
	_ = tinydraw.FilledRectangle(c.display, i16(x+r), i16(y), i16(w-2*r), i16(h), col)
	_ = tinydraw.FilledRectangle(c.display, i16(x), i16(y+r), i16(w), i16(h-2*r), col)
	if r == 0 {
		return
	}

	left, right := x+r, x+w-r-1
	top, bottom := y+r, y+h-r-1
	tinydraw.FilledCircle(c.display, i16(left), i16(top), i16(r), col)
	tinydraw.FilledCircle(c.display, i16(right), i16(top), i16(r), col)
	tinydraw.FilledCircle(c.display, i16(left), i16(bottom), i16(r), col)
	tinydraw.FilledCircle(c.display, i16(right), i16(bottom), i16(r), col)
}

func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, ink eyes.Color) {
	tinydraw.FilledTriangle(c.display,
		i16(x0), i16(y0), i16(x1), i16(y1), i16(x2), i16(y2), c.color(ink))
}

func (c *Canvas) Present() error {
	return c.display.Display()
}

func (c *Canvas) color(ink eyes.Color) color.RGBA {
	if ink == eyes.Foreground {
		return c.ink[eyes.Foreground]
	}
	return c.ink[eyes.Background]
}

// i16 saturates a coordinate into the drivers' int16 space.
func i16(v int) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
