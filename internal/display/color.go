package display

import "image/color"

// BGR565 is a 16-bit pixel: blue in the top five bits, green in the middle
// six, red in the low five.
type BGR565 uint16

// Common colours.
const (
	Black   BGR565 = 0x0000
	White   BGR565 = 0xFFFF
	Red     BGR565 = 0x001F
	Green   BGR565 = 0x07E0
	Blue    BGR565 = 0xF800
	Yellow  BGR565 = Red | Green
	Cyan    BGR565 = Green | Blue
	Magenta BGR565 = Red | Blue
)

// RGB packs 8-bit channels, dropping the low bits.
func RGB(r, g, b uint8) BGR565 {
	return BGR565(uint16(b>>3)<<11 | uint16(g>>2)<<5 | uint16(r>>3))
}

// Components returns the raw 5/6/5-bit channels.
func (c BGR565) Components() (r, g, b uint8) {
	return uint8(c & 0x1F), uint8(c>>5) & 0x3F, uint8(c >> 11)
}

// RGBA implements color.Color.
func (c BGR565) RGBA() (r, g, b, a uint32) {
	r5, g6, b5 := c.Components()
	r8 := uint32(r5<<3 | r5>>2)
	g8 := uint32(g6<<2 | g6>>4)
	b8 := uint32(b5<<3 | b5>>2)
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// Model converts any colour to BGR565. Alpha is ignored.
var Model = color.ModelFunc(toBGR565)

func toBGR565(c color.Color) color.Color {
	if v, ok := c.(BGR565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
