// Package palette builds swatch grids over the color model axes. Every grid
// maps a (row, column) cell to model parameters by linear interpolation and
// fills the cell as one flat rectangle, so the center pixel of a cell always
// holds the exact converted color for its step.
package palette

import (
	"fmt"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
	"github.com/MeKo-Tech/swatchgen/internal/hsl"
	"github.com/MeKo-Tech/swatchgen/internal/raster"
)

// Grid geometry defaults.
const (
	DefaultSteps = 8  // swatches per axis
	DefaultCell  = 16 // swatch edge length in pixels
)

// GridConfig controls the geometry of a square swatch grid.
type GridConfig struct {
	Steps  int           // swatches per axis
	Cell   int           // swatch edge length in pixels
	Format raster.Format // pixel layout of the rendered buffer
}

// Validate checks the grid geometry.
func (c GridConfig) Validate() error {
	if c.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", c.Steps)
	}
	if c.Cell < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.Cell)
	}
	return nil
}

// WhiteBlackGrid renders the whiteness/blackness swatch grid for one hue.
// Rows walk whiteness from 0 to 1000 permille top to bottom, columns walk
// blackness left to right. The bottom-right region collapses to grays where
// the two axes sum past 1000.
func WhiteBlackGrid(hue int, cfg GridConfig) *raster.Buffer {
	buf := raster.New(cfg.Steps*cfg.Cell, cfg.Steps*cfg.Cell, cfg.Format)
	for row := 0; row < cfg.Steps; row++ {
		for col := 0; col < cfg.Steps; col++ {
			w := 1000 * row / (cfg.Steps - 1)
			b := 1000 * col / (cfg.Steps - 1)
			c := colorspace.HWBToRGB(colorspace.HWB{H: hue, W: w, B: b})
			buf.Rect(col*cfg.Cell, row*cfg.Cell, cfg.Cell-1, cfg.Cell-1, c)
		}
	}
	return buf
}

// SatLumGrid renders a saturation/luminance swatch grid for one hue using
// the float HSL pipeline. Saturation falls from 1 at the top row to 0 at the
// bottom row, luminance rises from 0 to 1 left to right.
func SatLumGrid(hue float64, cfg GridConfig) *raster.Buffer {
	buf := raster.New(cfg.Steps*cfg.Cell, cfg.Steps*cfg.Cell, cfg.Format)
	for row := 0; row < cfg.Steps; row++ {
		s := float64(cfg.Steps-1-row) / float64(cfg.Steps-1)
		for col := 0; col < cfg.Steps; col++ {
			l := float64(col) / float64(cfg.Steps-1)
			c := hsl.FromHSL(hue, s, l)
			buf.Rect(col*cfg.Cell, row*cfg.Cell, cfg.Cell-1, cfg.Cell-1, c)
		}
	}
	return buf
}
