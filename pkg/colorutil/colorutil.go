// Package colorutil provides shared color utilities for the unshredder application.
package colorutil

import (
	"image/color"
)

// Common solid colors used by the shredder tool and tests.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// RGB8 returns the 8-bit red, green and blue channels of a color.
func RGB8(c color.Color) (r, g, b uint8) {
	r16, g16, b16, _ := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)
}

// Red8 returns the 8-bit red channel of a color.
func Red8(c color.Color) uint8 {
	r16, _, _, _ := c.RGBA()
	return uint8(r16 >> 8)
}

// Luminance returns the Rec. 709 luma of a color in the 0-255 range.
func Luminance(c color.Color) float64 {
	r, g, b := RGB8(c)
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}
