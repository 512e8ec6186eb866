// Package terminal shows the eye raster in a terminal through tcell, two
// pixels per character cell.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"nifri2/robo-eyes/raster"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// Display is a drivers.Displayer whose Display pushes the buffer to a tcell
// screen. Pixel rows 2n and 2n+1 share terminal row n.
type Display struct {
	*raster.Bitmap
	screen           tcell.Screen
	style            tcell.Style
	originX, originY int
}

func NewDisplay(screen tcell.Screen, width, height int) *Display {
	return &Display{
		Bitmap: raster.NewBitmap(width, height),
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// SetOrigin moves the top-left cell the raster is drawn at.
func (d *Display) SetOrigin(x, y int) {
	d.originX, d.originY = x, y
}

func (d *Display) Origin() (x, y int) {
	return d.originX, d.originY
}

func (d *Display) SetStyle(style tcell.Style) {
	d.style = style
}

// Cells is the terminal footprint of the raster.
func (d *Display) Cells() (cols, rows int) {
	w, h := d.Size()
	return int(w), (int(h) + 1) / 2
}

func (d *Display) Display() error {
	cols, rows := d.Cells()
	for row := 0; row < rows; row++ {
		for x := 0; x < cols; x++ {
			d.screen.SetContent(d.originX+x, d.originY+row, cell(d.Get(x, 2*row), d.Get(x, 2*row+1)), nil, d.style)
		}
	}
	d.screen.Show()
	d.Frames++
	return nil
}

func cell(top, bottom bool) rune {
	switch {
	case top && bottom:
		return fullBlock
	case top:
		return upperHalf
	case bottom:
		return lowerHalf
	default:
		return ' '
	}
}
