package raster

import (
	"image/color"
	"strings"
)

// Bitmap is a 1-bit framebuffer implementing drivers.Displayer. Any pixel
// set with a non-black colour is lit.
type Bitmap struct {
	width, height int16
	bits          []byte

	// Frames counts calls to Display.
	Frames int
}

func NewBitmap(width, height int) *Bitmap {
	w, h := i16(max(width, 0)), i16(max(height, 0))
	return &Bitmap{
		width:  w,
		height: h,
		bits:   make([]byte, (int(w)*int(h)+7)/8),
	}
}

func (b *Bitmap) Size() (x, y int16) {
	return b.width, b.height
}

func (b *Bitmap) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := int(y)*int(b.width) + int(x)
	if c.R|c.G|c.B != 0 {
		b.bits[i/8] |= 1 << (i % 8)
	} else {
		b.bits[i/8] &^= 1 << (i % 8)
	}
}

// Get reports whether the pixel is lit. Out of range pixels are dark.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= int(b.width) || y >= int(b.height) {
		return false
	}
	i := y*int(b.width) + x
	return b.bits[i/8]&(1<<(i%8)) != 0
}

// Lit counts lit pixels.
func (b *Bitmap) Lit() int {
	n := 0
	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			if b.Get(x, y) {
				n++
			}
		}
	}
	return n
}

func (b *Bitmap) ClearBuffer() {
	clear(b.bits)
}

func (b *Bitmap) Display() error {
	b.Frames++
	return nil
}

// String draws the buffer as text, '#' for lit pixels.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow((int(b.width) + 1) * int(b.height))
	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			if b.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
