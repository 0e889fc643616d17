package cmd

import (
	"testing"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
)

func TestReferenceRGB(t *testing.T) {
	tests := []struct {
		name  string
		input colorspace.HWB
		want  colorspace.RGB
	}{
		{
			name:  "pure red",
			input: colorspace.HWB{H: 0, W: 0, B: 0},
			want:  colorspace.RGB{R: 255},
		},
		{
			name:  "pure green",
			input: colorspace.HWB{H: 1200, W: 0, B: 0},
			want:  colorspace.RGB{G: 255},
		},
		{
			name:  "pure blue",
			input: colorspace.HWB{H: 2400, W: 0, B: 0},
			want:  colorspace.RGB{B: 255},
		},
		{
			name:  "mid gray",
			input: colorspace.HWB{H: 0, W: 500, B: 500},
			want:  colorspace.RGB{R: 128, G: 128, B: 128},
		},
		{
			name:  "full whiteness",
			input: colorspace.HWB{H: 1800, W: 1000, B: 0},
			want:  colorspace.RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "full blackness",
			input: colorspace.HWB{H: 1800, W: 0, B: 1000},
			want:  colorspace.RGB{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := referenceRGB(tt.input); got != tt.want {
				t.Errorf("referenceRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestChannelDelta(t *testing.T) {
	tests := []struct {
		name string
		a, b colorspace.RGB
		want int
	}{
		{
			name: "identical",
			a:    colorspace.RGB{R: 10, G: 20, B: 30},
			b:    colorspace.RGB{R: 10, G: 20, B: 30},
			want: 0,
		},
		{
			name: "red differs",
			a:    colorspace.RGB{R: 10},
			b:    colorspace.RGB{R: 13},
			want: 3,
		},
		{
			name: "negative direction",
			a:    colorspace.RGB{G: 200},
			b:    colorspace.RGB{G: 190},
			want: 10,
		},
		{
			name: "max across channels",
			a:    colorspace.RGB{R: 1, G: 5, B: 100},
			b:    colorspace.RGB{R: 2, G: 1, B: 90},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := channelDelta(tt.a, tt.b); got != tt.want {
				t.Errorf("channelDelta(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIntegerConversionTracksReference(t *testing.T) {
	// Coarse sweep of the in-gamut HWB space; the fixed-point pipeline is
	// allowed small rounding drift against the floating point conversion.
	const maxDelta = 3
	for h := 0; h < 3600; h += 300 {
		for w := 0; w <= 1000; w += 250 {
			for b := 0; w+b <= 1000; b += 250 {
				c := colorspace.HWB{H: h, W: w, B: b}
				got := colorspace.HWBToRGB(c)
				want := referenceRGB(c)
				if d := channelDelta(got, want); d > maxDelta {
					t.Errorf("hwb(%d,%d,%d): integer %v vs reference %v, delta %d",
						h, w, b, got, want, d)
				}
			}
		}
	}
}
