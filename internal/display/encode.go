package display

// Transfer layout: every line is Width little-endian pixels followed by
// filler up to BytesPerLine, and the whole buffer is XORed with a repeating
// four byte pattern keyed on the absolute buffer offset.
const (
	BytesPerLine = 2048
	FrameSize    = BytesPerLine * Height
	lineData     = Width * 2
)

// Header precedes every frame.
var Header = [16]byte{0xFF, 0xCC, 0xAA, 0x88}

var mask = [4]byte{0xE7, 0xF3, 0xE7, 0xFF}

// Mask XORs buf in place, treating buf[0] as absolute offset off.
// Applying it twice restores the input.
func Mask(buf []byte, off int) {
	for i := range buf {
		buf[i] ^= mask[(off+i)%4]
	}
}

// EncodeFrame writes the masked transfer buffer for fb into dst, growing it
// to FrameSize if needed, and returns it. Filler bytes are masked zeros.
func EncodeFrame(fb *Framebuffer, dst []byte) []byte {
	if cap(dst) < FrameSize {
		dst = make([]byte, FrameSize)
	}
	dst = dst[:FrameSize]

	for y := 0; y < Height; y++ {
		line := dst[y*BytesPerLine : (y+1)*BytesPerLine]
		row := fb.pix[y*Width : (y+1)*Width]
		for x, p := range row {
			line[2*x] = byte(p)
			line[2*x+1] = byte(p >> 8)
		}
		clear(line[lineData:])
		// BytesPerLine is a multiple of four, so each line starts in phase.
		Mask(line, 0)
	}
	return dst
}
