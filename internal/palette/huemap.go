package palette

import (
	"fmt"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
	"github.com/MeKo-Tech/swatchgen/internal/raster"
)

// Overview map defaults: 15 degree hue columns over a 10-row value ramp.
const (
	DefaultHueSteps   = 24
	DefaultValueSteps = 10
)

// MapConfig controls the geometry of the hue/value overview map.
type MapConfig struct {
	HueSteps   int // columns, hues spread evenly over the wheel
	ValueSteps int // rows, covering the 200-unit value ramp
	Cell       int // swatch edge length in pixels
	Format     raster.Format
}

// Validate checks the map geometry.
func (c MapConfig) Validate() error {
	if c.HueSteps < 1 {
		return fmt.Errorf("hue steps must be positive, got %d", c.HueSteps)
	}
	if c.ValueSteps < 1 {
		return fmt.Errorf("value steps must be positive, got %d", c.ValueSteps)
	}
	if c.Cell < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.Cell)
	}
	return nil
}

// HueValueMap renders the hue/value overview. Columns sweep the hue wheel;
// rows ramp a 200-unit value axis where the lower half fades blackness from
// 90 percent toward zero and the upper half raises whiteness, so each column
// runs from near-black at the top to pale at the bottom.
func HueValueMap(cfg MapConfig) *raster.Buffer {
	buf := raster.New(cfg.HueSteps*cfg.Cell, cfg.ValueSteps*cfg.Cell, cfg.Format)
	for col := 0; col < cfg.HueSteps; col++ {
		hue := col * 360 / cfg.HueSteps
		for row := 0; row < cfg.ValueSteps; row++ {
			value := row * 200 / cfg.ValueSteps
			b := 100 - minInt(value+10, 100)
			w := maxInt(value-100, 0)
			c := colorspace.HWBToRGB(colorspace.HWB{H: hue * 10, W: w * 10, B: b * 10})
			buf.Rect(col*cfg.Cell, row*cfg.Cell, cfg.Cell-1, cfg.Cell-1, c)
		}
	}
	return buf
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
