package display

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TextOptions control DrawText. Zero fields take the defaults.
type TextOptions struct {
	Size  float64     // points, default 14
	DPI   float64     // default 72
	Color color.Color // default White
	Font  *truetype.Font
}

var (
	goRegularOnce sync.Once
	goRegular     *truetype.Font
	goRegularErr  error
)

func defaultFont() (*truetype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = freetype.ParseFont(goregular.TTF)
	})
	return goRegular, goRegularErr
}

func (o TextOptions) withDefaults() (TextOptions, error) {
	if o.Size <= 0 {
		o.Size = 14
	}
	if o.DPI <= 0 {
		o.DPI = 72
	}
	if o.Color == nil {
		o.Color = White
	}
	if o.Font == nil {
		f, err := defaultFont()
		if err != nil {
			return o, fmt.Errorf("parse font: %w", err)
		}
		o.Font = f
	}
	return o, nil
}

// DrawText renders s with its top-left corner at at and returns the pen
// position after the last glyph.
func (f *Framebuffer) DrawText(s string, at image.Point, opts TextOptions) (image.Point, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return at, err
	}

	face := truetype.NewFace(opts.Font, &truetype.Options{Size: opts.Size, DPI: opts.DPI})
	defer face.Close()
	ascent := face.Metrics().Ascent.Ceil()

	c := freetype.NewContext()
	c.SetFont(opts.Font)
	c.SetFontSize(opts.Size)
	c.SetDPI(opts.DPI)
	c.SetClip(f.Bounds())
	c.SetDst(f)
	c.SetSrc(image.NewUniform(opts.Color))
	c.SetHinting(font.HintingFull)

	end, err := c.DrawString(s, freetype.Pt(at.X, at.Y+ascent))
	if err != nil {
		return at, fmt.Errorf("draw text: %w", err)
	}
	return image.Pt(end.X.Round(), at.Y), nil
}

// MeasureText returns the width and height in pixels of s.
func MeasureText(s string, opts TextOptions) (image.Point, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return image.Point{}, err
	}

	face := truetype.NewFace(opts.Font, &truetype.Options{Size: opts.Size, DPI: opts.DPI})
	defer face.Close()

	var w fixed.Int26_6
	for _, r := range s {
		if adv, ok := face.GlyphAdvance(r); ok {
			w += adv
		}
	}
	m := face.Metrics()
	return image.Pt(w.Round(), (m.Ascent + m.Descent).Ceil()), nil
}
