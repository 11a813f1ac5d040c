package display

import (
	"image"
	"image/color"
)

// Display geometry in pixels.
const (
	Width  = 960
	Height = 160
)

// Framebuffer is the in-memory picture sent to the screen, row-major.
// It implements draw.Image, so image/draw and friends can render into it.
type Framebuffer struct {
	pix []BGR565
}

// NewFramebuffer returns a black framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{pix: make([]BGR565, Width*Height)}
}

// DrawPixel sets one pixel. Writes outside the screen are dropped.
func (f *Framebuffer) DrawPixel(x, y int, c BGR565) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	f.pix[y*Width+x] = c
}

// Pixel returns the pixel at (x, y), or Black outside the screen.
func (f *Framebuffer) Pixel(x, y int) BGR565 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Black
	}
	return f.pix[y*Width+x]
}

// Clear paints the whole screen black.
func (f *Framebuffer) Clear() {
	f.Fill(Black)
}

// Fill paints the whole screen c.
func (f *Framebuffer) Fill(c BGR565) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

func (f *Framebuffer) ColorModel() color.Model {
	return Model
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

func (f *Framebuffer) At(x, y int) color.Color {
	return f.Pixel(x, y)
}

func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.DrawPixel(x, y, Model.Convert(c).(BGR565))
}
