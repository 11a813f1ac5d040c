package display

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// HLine draws a horizontal line from x0 to x1 inclusive.
func (f *Framebuffer) HLine(x0, x1, y int, c BGR565) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= Height {
		return
	}
	x0, x1 = max(x0, 0), min(x1, Width-1)
	for x := x0; x <= x1; x++ {
		f.DrawPixel(x, y, c)
	}
}

// VLine draws a vertical line from y0 to y1 inclusive.
func (f *Framebuffer) VLine(x, y0, y1 int, c BGR565) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x < 0 || x >= Width {
		return
	}
	y0, y1 = max(y0, 0), min(y1, Height-1)
	for y := y0; y <= y1; y++ {
		f.DrawPixel(x, y, c)
	}
}

// Line draws a one pixel wide line between two points, both included.
func (f *Framebuffer) Line(p0, p1 image.Point, c BGR565) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	e := dx + dy
	x, y := p0.X, p0.Y
	for {
		f.DrawPixel(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Rect draws the one pixel outline of r. r.Max is exclusive.
func (f *Framebuffer) Rect(r image.Rectangle, c BGR565) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	f.HLine(r.Min.X, r.Max.X-1, r.Min.Y, c)
	f.HLine(r.Min.X, r.Max.X-1, r.Max.Y-1, c)
	f.VLine(r.Min.X, r.Min.Y, r.Max.Y-1, c)
	f.VLine(r.Max.X-1, r.Min.Y, r.Max.Y-1, c)
}

// FillRect paints r, clipped to the screen.
func (f *Framebuffer) FillRect(r image.Rectangle, c BGR565) {
	r = r.Canon().Intersect(f.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.pix[y*Width : (y+1)*Width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = c
		}
	}
}

// DrawImage copies img with its top-left corner at at. Pixels falling off
// the screen are dropped.
func (f *Framebuffer) DrawImage(img image.Image, at image.Point) {
	xdraw.Copy(f, at, img, img.Bounds(), xdraw.Src, nil)
}

// DrawImageScaled scales img to fill dst.
func (f *Framebuffer) DrawImageScaled(img image.Image, dst image.Rectangle) {
	xdraw.ApproxBiLinear.Scale(f, dst, img, img.Bounds(), xdraw.Src, nil)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
