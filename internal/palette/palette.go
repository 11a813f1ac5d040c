// Package palette names the pad and button colour indices of the default
// Push 2 palette and maps arbitrary colours onto them.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette indices. 0 turns a light off.
const (
	Black         uint8 = 0
	Pink          uint8 = 1
	Red           uint8 = 2
	Orange        uint8 = 3
	Orange2       uint8 = 4
	BrownPale     uint8 = 5
	Brown         uint8 = 6
	YellowPale    uint8 = 7
	Yellow        uint8 = 8
	GreenLime     uint8 = 9
	GreenLight    uint8 = 10
	Green         uint8 = 11
	GreenTurtle   uint8 = 12
	GreenPale     uint8 = 13
	TurquoisePale uint8 = 14
	Turquoise     uint8 = 15
	BlueSky       uint8 = 16
	PurplePale    uint8 = 17
	PurpleBlue    uint8 = 18
	Purple        uint8 = 19
	BlueSkyDark   uint8 = 20
	White         uint8 = 122
)

// Swatch is one palette entry with its approximate on-device colour.
type Swatch struct {
	Index uint8
	Name  string
	Color colorful.Color
}

var swatches = []Swatch{
	{Black, "black", mustHex("#000000")},
	{Pink, "pink", mustHex("#ed5a8a")},
	{Red, "red", mustHex("#e0292b")},
	{Orange, "orange", mustHex("#f2702a")},
	{Orange2, "orange2", mustHex("#f7a21b")},
	{BrownPale, "brown_pale", mustHex("#c4955c")},
	{Brown, "brown", mustHex("#8c5a2b")},
	{YellowPale, "yellow_pale", mustHex("#eddc8c")},
	{Yellow, "yellow", mustHex("#f2e60a")},
	{GreenLime, "green_lime", mustHex("#b4e61e")},
	{GreenLight, "green_light", mustHex("#6ee63c")},
	{Green, "green", mustHex("#1ec81e")},
	{GreenTurtle, "green_turtle", mustHex("#1e9646")},
	{GreenPale, "green_pale", mustHex("#8cdc96")},
	{TurquoisePale, "turquoise_pale", mustHex("#8cdcd2")},
	{Turquoise, "turquoise", mustHex("#1ec8b4")},
	{BlueSky, "blue_sky", mustHex("#3cb4f0")},
	{PurplePale, "purple_pale", mustHex("#aaa0e6")},
	{PurpleBlue, "purple_blue", mustHex("#6450dc")},
	{Purple, "purple", mustHex("#9628c8")},
	{BlueSkyDark, "blue_sky_dark", mustHex("#1e5ab4")},
	{White, "white", mustHex("#ffffff")},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: bad colour %q: %v", s, err))
	}
	return c
}

// Swatches returns every named palette entry.
func Swatches() []Swatch {
	return append([]Swatch(nil), swatches...)
}

// Lookup returns the swatch for index i.
func Lookup(i uint8) (Swatch, bool) {
	for _, s := range swatches {
		if s.Index == i {
			return s, true
		}
	}
	return Swatch{}, false
}

// Parse returns the index of a swatch by name.
func Parse(name string) (uint8, bool) {
	for _, s := range swatches {
		if s.Name == name {
			return s.Index, true
		}
	}
	return 0, false
}

// Nearest returns the index whose colour is perceptually closest to c.
func Nearest(c color.Color) uint8 {
	want, _ := colorful.MakeColor(c)

	best, bestDist := swatches[0], want.DistanceLab(swatches[0].Color)
	for _, s := range swatches[1:] {
		if d := want.DistanceLab(s.Color); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best.Index
}
