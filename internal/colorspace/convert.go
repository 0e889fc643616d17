package colorspace

// min3 returns the minimum of three uint8 values.
func min3(a, b, c uint8) uint8 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

// max3 returns the maximum of three uint8 values.
func max3(a, b, c uint8) uint8 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

// HueToRGB maps a hue angle to the fully saturated, full brightness color at
// that position on the RGB wheel. Within each 600-unit sector one channel
// ramps linearly while the others sit at 0 and 255.
func HueToRGB(hue int) RGB {
	sector := hue / 600
	ramp := hue % 600 * 255 / 600
	if sector&1 == 1 {
		ramp = 255 - ramp
	}
	r, g, b := PlaceSector(sector, 255, uint8(ramp), 0)
	return RGB{R: r, G: g, B: b}
}

// RGBToHue returns the hue of a color in tenths of a degree.
// Achromatic colors (all channels equal) report hue 0.
func RGBToHue(c RGB) int {
	lo := min3(c.R, c.G, c.B)
	hi := max3(c.R, c.G, c.B)
	if lo == hi {
		return 0
	}
	return hueOf(c, lo, hi)
}

// hueOf computes the hue of a chromatic color in tenths of a degree.
// Callers must ensure lo != hi.
func hueOf(c RGB, lo, hi uint8) int {
	var diff, base int
	switch hi {
	case c.R:
		// sector 0 or 5
		diff = int(c.G) - int(c.B)
		base = 0
	case c.G:
		// sector 1 or 2
		diff = int(c.B) - int(c.R)
		base = 1200
	case c.B:
		// sector 3 or 4
		diff = int(c.R) - int(c.G)
		base = 2400
	}

	// Chroma terms scale by 1000/256 here, not the 255 the byte ramps use;
	// every computed hue shifts if the divisor changes.
	f := diff * 1000 / 256
	d := (int(hi) - int(lo)) * 1000 / 256

	hue := base + 600*f/d
	hue += 3600
	hue %= 3600
	return hue
}

// Gray returns the gray with the given permille brightness.
func Gray(value int) RGB {
	v := uint8(255 * value / 1000)
	return RGB{R: v, G: v, B: v}
}

// Mix interpolates each channel from a toward b by p permille. Each channel
// is computed on one combined numerator; truncating the delta term on its
// own would round descending ramps up instead of down.
func Mix(p int, a, b RGB) RGB {
	return RGB{
		R: mixChannel(p, a.R, b.R),
		G: mixChannel(p, a.G, b.G),
		B: mixChannel(p, a.B, b.B),
	}
}

func mixChannel(p int, a, b uint8) uint8 {
	return uint8((int(a)*1000 + (int(b)-int(a))*p) / 1000)
}

// HWBToRGB converts a hue/whiteness/blackness color to RGB.
//
// When whiteness and blackness sum to 1000 or more the hue carries no
// information and the color is the gray holding whiteness's share of the
// sum. Otherwise whiteness sets the low channel, blackness caps the high
// channel and the ramp channel interpolates between the two.
func HWBToRGB(c HWB) RGB {
	total := c.W + c.B
	if total >= 1000 {
		return Gray(1000 * c.W / total)
	}

	lo := 255 * c.W / 1000
	hi := 255 - 255*c.B/1000

	sector := c.H / 600
	ramp := c.H % 600 * 1000 / 600 // permille position inside the sector
	if sector&1 == 1 {
		ramp = 1000 - ramp
	}
	mid := lo + ramp*(hi-lo)/1000

	r, g, b := PlaceSector(sector, uint8(hi), uint8(mid), uint8(lo))
	return RGB{R: r, G: g, B: b}
}

// RGBToHWB converts an RGB color to hue/whiteness/blackness. Whiteness is
// the minimum channel and blackness the headroom above the maximum channel,
// both scaled to permille. Achromatic colors report hue 0.
func RGBToHWB(c RGB) HWB {
	lo := min3(c.R, c.G, c.B)
	hi := max3(c.R, c.G, c.B)

	hue := 0
	if lo != hi {
		hue = hueOf(c, lo, hi)
	}

	return HWB{
		H: hue,
		W: int(lo) * 1000 / 255,
		B: (255 - int(hi)) * 1000 / 255,
	}
}
