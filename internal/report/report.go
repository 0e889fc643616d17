// Package report prints palette overview tables as HTML.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/MeKo-Tech/swatchgen/internal/hsl"
)

// Default report geometry: five saturation blocks of sixteen luminance rows,
// hues every 15 degrees.
const (
	DefaultSatSteps = 4
	DefaultLumSteps = 15
	DefaultHueStep  = 15
	DefaultCellPx   = 16
)

// Config controls the report geometry. Step counts are divisions, so a block
// count of SatSteps renders SatSteps+1 saturation levels.
type Config struct {
	SatSteps int // saturation divisions; blocks sweep saturation 1 down to 0
	LumSteps int // luminance divisions; rows sweep luminance 0 up to 1
	HueStep  int // degrees between hue columns
	CellPx   int // swatch edge length in pixels
}

func (c Config) withDefaults() Config {
	if c.SatSteps == 0 {
		c.SatSteps = DefaultSatSteps
	}
	if c.LumSteps == 0 {
		c.LumSteps = DefaultLumSteps
	}
	if c.HueStep == 0 {
		c.HueStep = DefaultHueStep
	}
	if c.CellPx == 0 {
		c.CellPx = DefaultCellPx
	}
	return c
}

// Validate checks the report geometry.
func (c Config) Validate() error {
	if c.SatSteps < 1 {
		return fmt.Errorf("saturation steps must be at least 1, got %d", c.SatSteps)
	}
	if c.LumSteps < 1 {
		return fmt.Errorf("luminance steps must be at least 1, got %d", c.LumSteps)
	}
	if c.HueStep < 1 {
		return fmt.Errorf("hue step must be positive, got %d", c.HueStep)
	}
	if c.CellPx < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellPx)
	}
	return nil
}

type cell struct {
	Color string
}

type row struct {
	Cells []cell
}

type block struct {
	Rows []row
}

type reportData struct {
	CellPx int
	Blocks []block
}

var reportTemplate = template.Must(template.New("report").Parse(`{{range .Blocks -}}
<div style="display: table;">
{{range .Rows -}}
<div style="display: table-row;">
{{range .Cells -}}
<div style="display: table-cell; background-color: {{.Color}}; width: {{$.CellPx}}px; height: {{$.CellPx}}px;"></div>
{{end -}}
</div>
{{end -}}
</div>
<br>
{{end -}}
`))

// Write renders the saturation/luminance hue table as HTML. Each saturation
// level becomes one table block whose rows brighten from black to full
// luminance and whose columns step around the hue wheel.
func Write(w io.Writer, cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	hues := make([]float64, 0, 360/cfg.HueStep)
	for h := 0; h < 360; h += cfg.HueStep {
		hues = append(hues, float64(h))
	}

	data := reportData{CellPx: cfg.CellPx}
	for si := cfg.SatSteps; si >= 0; si-- {
		s := float64(si) / float64(cfg.SatSteps)

		var b block
		for li := 0; li <= cfg.LumSteps; li++ {
			l := float64(li) / float64(cfg.LumSteps)

			var r row
			for _, h := range hues {
				r.Cells = append(r.Cells, cell{Color: hsl.New(h, s, l).String()})
			}
			b.Rows = append(b.Rows, r)
		}
		data.Blocks = append(data.Blocks, b)
	}

	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}
