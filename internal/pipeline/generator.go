package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/MeKo-Tech/swatchgen/internal/palette"
	"github.com/MeKo-Tech/swatchgen/internal/raster"
	"github.com/MeKo-Tech/swatchgen/internal/sink"
)

// ArchiveWriter stores encoded swatches keyed by kind and hue in degrees.
// This matches the signature of archive.Writer.WriteSwatch.
type ArchiveWriter interface {
	WriteSwatch(kind string, hue int, data []byte) error
}

// Config configures a Generator.
type Config struct {
	Grid      palette.GridConfig // zero value selects the defaults
	Map       palette.MapConfig  // zero value selects the defaults
	OutputDir string
	Sink      *sink.Sink
	Archive   ArchiveWriter // when set, swatches go to the archive instead of OutputDir
	Logger    *slog.Logger
}

// Generator wires the palette builders and the image sink into a single step.
type Generator struct {
	grid      palette.GridConfig
	hueMap    palette.MapConfig
	outputDir string
	sink      *sink.Sink
	archive   ArchiveWriter
	logger    *slog.Logger
}

// NewGenerator validates the configuration and prepares a generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Grid == (palette.GridConfig{}) {
		cfg.Grid = palette.GridConfig{Steps: palette.DefaultSteps, Cell: palette.DefaultCell}
	}
	if cfg.Map == (palette.MapConfig{}) {
		cfg.Map = palette.MapConfig{
			HueSteps:   palette.DefaultHueSteps,
			ValueSteps: palette.DefaultValueSteps,
			Cell:       cfg.Grid.Cell,
			Format:     cfg.Grid.Format,
		}
	}

	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Map.Validate(); err != nil {
		return nil, err
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("sink must be set")
	}
	if cfg.Archive == nil && cfg.OutputDir == "" {
		return nil, fmt.Errorf("output dir must be set")
	}

	return &Generator{
		grid:      cfg.Grid,
		hueMap:    cfg.Map,
		outputDir: cfg.OutputDir,
		sink:      cfg.Sink,
		archive:   cfg.Archive,
		logger:    cfg.Logger,
	}, nil
}

// Generate renders the job and writes the encoded swatch to its destination.
// Returns the final file path, or the swatch name when writing to an archive.
func (g *Generator) Generate(ctx context.Context, job Job, force bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := job.Name() + g.sink.Ext()

	if g.archive != nil {
		buf, err := g.render(job)
		if err != nil {
			return "", err
		}

		var encoded bytes.Buffer
		if err := g.sink.Encode(&encoded, buf); err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", name, err)
		}

		g.log().Debug("Archiving swatch", "name", name, "kind", job.Kind)
		if err := g.archive.WriteSwatch(job.Kind, job.Hue/10, encoded.Bytes()); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", name, err)
		}

		return name, nil
	}

	finalPath := filepath.Join(g.outputDir, name)
	if !force {
		if _, err := os.Stat(finalPath); err == nil {
			g.log().Info("Swatch already exists; skipping", "name", name, "path", finalPath)
			return finalPath, nil
		}
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	buf, err := g.render(job)
	if err != nil {
		return "", err
	}

	g.log().Info("Writing swatch", "name", name, "path", finalPath)
	if err := g.sink.Write(finalPath, buf); err != nil {
		return "", err
	}

	return finalPath, nil
}

// render builds the pixel buffer for a job. Pure computation.
func (g *Generator) render(job Job) (*raster.Buffer, error) {
	switch job.Kind {
	case KindPalette:
		return palette.WhiteBlackGrid(job.Hue, g.grid), nil
	case KindHSL:
		return palette.SatLumGrid(float64(job.Hue)/10, g.grid), nil
	case KindHueMap:
		return palette.HueValueMap(g.hueMap), nil
	}
	return nil, fmt.Errorf("unknown job kind %q", job.Kind)
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}
