package mandel

import (
	"image/color"
	"math"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Black is the color of points that never escaped.
var Black = RGB{}

// palette constants
const (
	paletteSize   = 161
	paletteStride = 3
	paletteOffset = 30
)

// ColorOf maps an escape count to a color. 0 (never escaped) is black; other
// counts walk around a hue circle in steps of paletteStride.
func ColorOf(iterations uint32) RGB {
	if iterations == 0 {
		return Black
	}
	limited := (paletteStride*uint64(iterations))%paletteSize + paletteOffset
	hue := float64(limited) / paletteSize * 2 * math.Pi
	return RGB{
		R: channel(math.Sin(hue)),
		G: channel(math.Cos(hue)),
		B: channel(math.Cos(hue + math.Pi/2)),
	}
}

func channel(v float64) uint8 {
	return uint8((v*0.5 + 0.5) * 255)
}
