package display

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/bmp"
)

// DrawBMP decodes a BMP image and draws it with its top-left corner at at.
func (f *Framebuffer) DrawBMP(data []byte, at image.Point) error {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode bmp: %w", err)
	}
	f.DrawImage(img, at)
	return nil
}

// Snapshot encodes the framebuffer as a BMP image.
func (f *Framebuffer) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, f); err != nil {
		return nil, fmt.Errorf("encode bmp: %w", err)
	}
	return buf.Bytes(), nil
}
