// Package colorspace implements fixed-point conversions between the RGB and
// HWB color models using integer math only. Hue is measured in tenths of a
// degree (0..3599), whiteness and blackness in permille (0..1000). Every
// division truncates toward zero; the exact truncation points are pinned by
// the conversion tests.
package colorspace

import "fmt"

// RGB is an additive color with three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// FromPacked extracts the channels from a packed 0xRRGGBB integer.
// Bits above the low 24 are ignored.
func FromPacked(v uint32) RGB {
	return RGB{
		R: uint8((v >> 16) & 0xff),
		G: uint8((v >> 8) & 0xff),
		B: uint8(v & 0xff),
	}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// HWB is a color in the hue/whiteness/blackness model.
//
// Whiteness and blackness may sum past 1000. Such colors carry no hue and
// collapse to a gray determined by whiteness's share of the sum.
type HWB struct {
	H int // hue, tenths of a degree (0..3599)
	W int // whiteness, permille (0..1000)
	B int // blackness, permille (0..1000)
}
