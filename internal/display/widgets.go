package display

import (
	"errors"
	"image"
	"math"
)

// Encoder strip geometry: one region per track encoder across the top edge.
const (
	EncoderRegionWidth = Width / 8
	EncoderBarHeight   = 8
	EncoderBarPadding  = 10
	EncoderBarWidth    = EncoderRegionWidth - 2*EncoderBarPadding

	encoderBarY = 0
)

func encoderBarRect(index int, width int) image.Rectangle {
	x := index*EncoderRegionWidth + EncoderBarPadding
	return image.Rect(x, encoderBarY, x+width, encoderBarY+EncoderBarHeight)
}

// EncoderOutline draws the frame around encoder bar index (0..7).
func (f *Framebuffer) EncoderOutline(index int, c BGR565) {
	if index < 0 || index > 7 {
		return
	}
	f.Rect(encoderBarRect(index, EncoderBarWidth), c)
}

// EncoderBar fills encoder bar index in proportion to value over 0..127.
func (f *Framebuffer) EncoderBar(index int, value int32, c BGR565) {
	if index < 0 || index > 7 {
		return
	}
	value = min(max(value, 0), 127)
	w := int(value) * EncoderBarWidth / 127
	if w == 0 {
		return
	}
	f.FillRect(encoderBarRect(index, w), c)
}

// WaveformPeaks draws one vertical line per column from min to max, where
// each peak pair is in [-1, 1] and 0 is the vertical centre. Columns past
// the right edge are ignored.
func (f *Framebuffer) WaveformPeaks(peaks [][2]float32, c BGR565) {
	mid := float64(Height) / 2
	for x, p := range peaks {
		if x >= Width {
			break
		}
		yMin := mid - float64(p[0])*mid
		yMax := mid - float64(p[1])*mid
		top := int(math.Round(math.Min(yMin, yMax)))
		bottom := max(int(math.Round(math.Max(yMin, yMax))), top)
		f.VLine(x, top, bottom, c)
	}
}

var (
	ErrNoSamples = errors.New("no samples")
	ErrTooShort  = errors.New("too few samples for the requested width")
)

// Peaks reduces normalised samples to width (min, max) pairs, one per
// column. Mins are never above zero and maxes never below.
func Peaks(samples []float32, width int) ([][2]float32, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if width <= 0 || len(samples) < width {
		return nil, ErrTooShort
	}
	per := len(samples) / width

	out := make([][2]float32, width)
	for x := range out {
		chunk := samples[x*per : (x+1)*per]
		var lo, hi float32
		for _, s := range chunk {
			lo = min(lo, s)
			hi = max(hi, s)
		}
		out[x] = [2]float32{lo, hi}
	}
	return out, nil
}
