package palette

import (
	"testing"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
	"github.com/MeKo-Tech/swatchgen/internal/raster"
)

func defaultMap() MapConfig {
	return MapConfig{
		HueSteps:   DefaultHueSteps,
		ValueSteps: DefaultValueSteps,
		Cell:       DefaultCell,
		Format:     raster.FormatRGB8,
	}
}

func TestMapConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MapConfig
		wantErr bool
	}{
		{"defaults", defaultMap(), false},
		{"zero_hue_steps", MapConfig{HueSteps: 0, ValueSteps: 10, Cell: 16}, true},
		{"zero_value_steps", MapConfig{HueSteps: 24, ValueSteps: 0, Cell: 16}, true},
		{"zero_cell", MapConfig{HueSteps: 24, ValueSteps: 10, Cell: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHueValueMap(t *testing.T) {
	cfg := defaultMap()
	buf := HueValueMap(cfg)

	if buf.W != 384 || buf.H != 160 {
		t.Fatalf("buffer is %dx%d, want 384x160", buf.W, buf.H)
	}

	tests := []struct {
		name     string
		row, col int
		want     colorspace.RGB
	}{
		// top row: value 0 keeps 90 percent blackness
		{"red_column_dark", 0, 0, colorspace.HWBToRGB(colorspace.HWB{H: 0, W: 0, B: 900})},
		// bottom row: value 180 holds 80 percent whiteness
		{"red_column_pale", 9, 0, colorspace.HWBToRGB(colorspace.HWB{H: 0, W: 800, B: 0})},
		// middle of the ramp drops both axes to zero: the pure hue
		{"cyan_column_pure", 5, 12, colorspace.RGB{G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerAt(t, buf, cfg.Cell, tt.row, tt.col); got != tt.want {
				t.Errorf("swatch (%d,%d) center = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}
