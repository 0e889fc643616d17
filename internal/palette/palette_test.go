package palette

import (
	"testing"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
	"github.com/MeKo-Tech/swatchgen/internal/raster"
)

func defaultGrid() GridConfig {
	return GridConfig{Steps: DefaultSteps, Cell: DefaultCell, Format: raster.FormatRGB8}
}

func TestGridConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GridConfig
		wantErr bool
	}{
		{"defaults", defaultGrid(), false},
		{"minimal", GridConfig{Steps: 2, Cell: 1}, false},
		{"one_step", GridConfig{Steps: 1, Cell: 16}, true},
		{"zero_cell", GridConfig{Steps: 8, Cell: 0}, true},
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

// centerAt returns the center pixel of the swatch at (row, col).
func centerAt(t *testing.T, buf *raster.Buffer, cell, row, col int) colorspace.RGB {
	t.Helper()
	return buf.At(col*cell+cell/2, row*cell+cell/2)
}

func TestWhiteBlackGrid(t *testing.T) {
	cfg := defaultGrid()
	buf := WhiteBlackGrid(0, cfg)

	if buf.W != 128 || buf.H != 128 {
		t.Fatalf("buffer is %dx%d, want 128x128", buf.W, buf.H)
	}
	if len(buf.Pix) != 128*128*3 {
		t.Fatalf("len(Pix) = %d, want %d", len(buf.Pix), 128*128*3)
	}

	tests := []struct {
		name     string
		row, col int
		want     colorspace.RGB
	}{
		{"pure_hue", 0, 0, colorspace.RGB{R: 255}},
		{"full_black", 0, 7, colorspace.RGB{}},
		{"full_white", 7, 0, colorspace.RGB{R: 255, G: 255, B: 255}},
		{"both_full_collapses_to_gray", 7, 7, colorspace.Gray(500)},
		{"interior", 2, 1, colorspace.HWBToRGB(colorspace.HWB{H: 0, W: 2000 / 7, B: 1000 / 7})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerAt(t, buf, cfg.Cell, tt.row, tt.col); got != tt.want {
				t.Errorf("swatch (%d,%d) center = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}

	// The inclusive cell fill reaches the buffer corner.
	if got := buf.At(127, 127); got != colorspace.Gray(500) {
		t.Errorf("corner pixel = %v, want %v", got, colorspace.Gray(500))
	}
}

func TestWhiteBlackGridHue(t *testing.T) {
	buf := WhiteBlackGrid(2400, defaultGrid())
	want := colorspace.RGB{B: 255}
	if got := centerAt(t, buf, DefaultCell, 0, 0); got != want {
		t.Errorf("blue grid swatch (0,0) = %v, want pure blue", got)
	}
}

func TestSatLumGrid(t *testing.T) {
	cfg := GridConfig{Steps: 5, Cell: 8, Format: raster.FormatRGB8}
	buf := SatLumGrid(0, cfg)

	if buf.W != 40 || buf.H != 40 {
		t.Fatalf("buffer is %dx%d, want 40x40", buf.W, buf.H)
	}

	tests := []struct {
		name     string
		row, col int
		want     colorspace.RGB
	}{
		{"top_right_full", 0, 4, colorspace.RGB{R: 255}},
		{"half_luminance", 0, 2, colorspace.RGB{R: 127}},
		{"half_saturation_full_luminance", 2, 4, colorspace.RGB{R: 255, G: 127, B: 127}},
		{"bottom_left_black", 4, 0, colorspace.RGB{}},
		{"bottom_right_white", 4, 4, colorspace.RGB{R: 255, G: 255, B: 255}},
		{"bottom_mid_gray", 4, 2, colorspace.RGB{R: 127, G: 127, B: 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerAt(t, buf, cfg.Cell, tt.row, tt.col); got != tt.want {
				t.Errorf("swatch (%d,%d) center = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}
