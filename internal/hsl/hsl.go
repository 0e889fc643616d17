// Package hsl implements the floating-point HSL to RGB pipeline. It is
// independent from the fixed-point conversions in the colorspace package and
// shares only the sector dispatch table with them.
package hsl

import (
	"math"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
)

// Color is a hue/saturation/luminance color. Hue is in degrees and may run
// past 360; saturation and luminance are fractions in [0, 1]. Out-of-range
// values are not validated and flow through the arithmetic unchecked.
type Color struct {
	H float64 // hue, degrees
	S float64 // saturation, 0..1
	L float64 // luminance, 0..1
}

// New returns the color with the given hue, saturation and luminance.
func New(h, s, l float64) Color {
	return Color{H: h, S: s, L: l}
}

// Black is the color with every component zero.
func Black() Color {
	return Color{}
}

// RGB converts the color to 8-bit RGB.
//
// Chroma is luminance times saturation, not the CSS variant that folds
// lightness symmetrically around 0.5; the rendered palettes depend on this
// scaling. Channel conversion truncates, so a luminance of 0.5 lands on
// 0x7f rather than 0x80.
func (c Color) RGB() colorspace.RGB {
	chroma := c.L * c.S
	h := c.H / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := c.L - chroma

	r, g, b := colorspace.PlaceSector(int(h), chroma, x, 0)
	return colorspace.RGB{
		R: channelByte(r + m),
		G: channelByte(g + m),
		B: channelByte(b + m),
	}
}

// String formats the color as the hex form of its RGB conversion.
func (c Color) String() string {
	return c.RGB().Hex()
}

// channelByte scales a 0..1 component to a byte, truncating.
func channelByte(v float64) uint8 {
	return uint8(v * 255)
}

// FromHSL converts hue, saturation and luminance directly to RGB.
func FromHSL(h, s, l float64) colorspace.RGB {
	return Color{H: h, S: s, L: l}.RGB()
}

// Gray returns the gray with the given intensity in [0, 1].
func Gray(intensity float64) colorspace.RGB {
	return FromHSL(0, 0, intensity)
}

// PrimaryColors returns the fully saturated, full luminance colors walking
// the hue wheel from 0 in increments of step degrees. step must be positive.
func PrimaryColors(step int) []colorspace.RGB {
	colors := make([]colorspace.RGB, 0, 360/step)
	for hue := 0; hue < 360; hue += step {
		colors = append(colors, FromHSL(float64(hue), 1, 1))
	}
	return colors
}
