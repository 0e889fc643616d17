package hsl

import (
	"fmt"
	"testing"
)

func TestFromHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 1, "#ff0000"},
		{60, 1, 1, "#ffff00"},
		{120, 1, 1, "#00ff00"},
		{240, 1, 1, "#0000ff"},
		{0, 0, 0, "#000000"},
		{0, 0, 1, "#ffffff"},
		// chroma scales with luminance, so halving saturation at full
		// luminance tints toward white instead of collapsing to it
		{0, 0.5, 1, "#ff7f7f"},
		// hue wraps past 360
		{420, 1, 1, "#ffff00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FromHSL(tt.h, tt.s, tt.l).Hex()
			if got != tt.want {
				t.Errorf("FromHSL(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestPrimaryColors(t *testing.T) {
	want := []string{
		"#ff0000", "#ff7f00", "#ffff00", "#7fff00",
		"#00ff00", "#00ff7f", "#00ffff", "#007fff",
		"#0000ff", "#7f00ff", "#ff00ff", "#ff007f",
	}

	colors := PrimaryColors(30)
	if len(colors) != len(want) {
		t.Fatalf("PrimaryColors(30) returned %d colors, want %d", len(colors), len(want))
	}
	for i, c := range colors {
		if c.Hex() != want[i] {
			t.Errorf("color %d = %s, want %s", i, c.Hex(), want[i])
		}
	}
}

func TestGray(t *testing.T) {
	// Truncation pins the quarter steps below the midpoints.
	tests := []struct {
		intensity float64
		want      string
	}{
		{0, "#000000"},
		{0.25, "#3f3f3f"},
		{0.5, "#7f7f7f"},
		{0.75, "#bfbfbf"},
		{1, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Gray(tt.intensity).Hex(); got != tt.want {
				t.Errorf("Gray(%v) = %s, want %s", tt.intensity, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	c := New(0, 1, 1)
	if got := fmt.Sprint(c); got != "#ff0000" {
		t.Errorf("Sprint(Color) = %s, want #ff0000", got)
	}
	if got := Black().String(); got != "#000000" {
		t.Errorf("Black().String() = %s, want #000000", got)
	}
}
