// Package pipeline renders swatch jobs into image files or a swatch archive.
package pipeline

import "fmt"

// Swatch kinds a job can render.
const (
	KindPalette = "palette" // whiteness x blackness grid, integer pipeline
	KindHSL     = "hslgrid" // saturation x luminance grid, float pipeline
	KindHueMap  = "huemap"  // hue x value overview map
)

// Job identifies a single swatch to render.
type Job struct {
	Kind string
	Hue  int // tenths of a degree, 0..3599; unused for KindHueMap
}

// Name returns the base file name of the job's output, without extension.
// Hue-parameterized kinds encode the hue in whole degrees.
func (j Job) Name() string {
	switch j.Kind {
	case KindHSL:
		return fmt.Sprintf("hsl%d", j.Hue/10)
	case KindHueMap:
		return "hue_palette"
	}
	return fmt.Sprintf("palette%d", j.Hue/10)
}
