package raster

import (
	"fmt"
	"image/color"
	"io"
)

// PanelSize is the edge of the square WS2812 panels used for the eyes.
const PanelSize = 16

// Matrix spreads a bitmap over a row of square LED panels, one strip
// writer per panel. Each Display writes every panel as a row-major frame
// of GRB bytes, the layout the ws2812 driver expects.
type Matrix struct {
	*Bitmap
	panel  int
	strips []io.Writer
	lit    color.RGBA
	frame  []byte
}

// NewMatrix builds a canvas panel*len(strips) wide and panel high.
func NewMatrix(panel int, lit color.RGBA, strips ...io.Writer) *Matrix {
	return &Matrix{
		Bitmap: NewBitmap(panel*len(strips), panel),
		panel:  panel,
		strips: strips,
		lit:    lit,
		frame:  make([]byte, 0, panel*panel*3),
	}
}

func (m *Matrix) Display() error {
	for i, strip := range m.strips {
		m.frame = m.frame[:0]
		for y := 0; y < m.panel; y++ {
			for x := 0; x < m.panel; x++ {
				c := Off
				if m.Get(i*m.panel+x, y) {
					c = m.lit
				}
				m.frame = append(m.frame, c.G, c.R, c.B)
			}
		}
		if _, err := strip.Write(m.frame); err != nil {
			return fmt.Errorf("write panel %d: %w", i, err)
		}
	}
	m.Frames++
	return nil
}
