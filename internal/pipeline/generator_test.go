package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
	"github.com/MeKo-Tech/swatchgen/internal/palette"
	"github.com/MeKo-Tech/swatchgen/internal/sink"
	"github.com/stretchr/testify/require"
)

func TestJobName(t *testing.T) {
	tests := []struct {
		job  Job
		want string
	}{
		{Job{Kind: KindPalette, Hue: 0}, "palette0"},
		{Job{Kind: KindPalette, Hue: 2400}, "palette240"},
		{Job{Kind: KindHSL, Hue: 300}, "hsl30"},
		{Job{Kind: KindHueMap}, "hue_palette"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.job.Name())
	}
}

func newTestGenerator(t *testing.T, outputDir string) *Generator {
	t.Helper()

	s, err := sink.New("png", "speed")
	require.NoError(t, err)

	gen, err := NewGenerator(Config{
		Grid:      palette.GridConfig{Steps: 4, Cell: 4},
		OutputDir: outputDir,
		Sink:      s,
	})
	require.NoError(t, err)

	return gen
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func pixelAt(img image.Image, x, y int) colorspace.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return colorspace.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestNewGenerator_Validation(t *testing.T) {
	s, err := sink.New("png", "default")
	require.NoError(t, err)

	_, err = NewGenerator(Config{OutputDir: "out"})
	require.Error(t, err, "missing sink must be rejected")

	_, err = NewGenerator(Config{Sink: s})
	require.Error(t, err, "missing destination must be rejected")

	_, err = NewGenerator(Config{
		Grid:      palette.GridConfig{Steps: 1, Cell: 4},
		OutputDir: "out",
		Sink:      s,
	})
	require.Error(t, err, "degenerate grid must be rejected")
}

func TestGenerate_WritesPaletteSwatch(t *testing.T) {
	outputDir := t.TempDir()
	gen := newTestGenerator(t, outputDir)

	path, err := gen.Generate(context.Background(), Job{Kind: KindPalette, Hue: 2400}, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outputDir, "palette240.png"), path)

	img := decodePNG(t, path)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())

	// Top-left cell has zero whiteness and blackness: the pure hue, blue.
	require.Equal(t, colorspace.RGB{B: 255}, pixelAt(img, 2, 2))
}

func TestGenerate_WritesHSLSwatch(t *testing.T) {
	outputDir := t.TempDir()
	gen := newTestGenerator(t, outputDir)

	path, err := gen.Generate(context.Background(), Job{Kind: KindHSL, Hue: 1200}, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outputDir, "hsl120.png"), path)

	// Top-left cell has zero luminance regardless of hue.
	img := decodePNG(t, path)
	require.Equal(t, colorspace.RGB{}, pixelAt(img, 2, 2))
}

func TestGenerate_WritesHueMap(t *testing.T) {
	outputDir := t.TempDir()
	gen := newTestGenerator(t, outputDir)

	path, err := gen.Generate(context.Background(), Job{Kind: KindHueMap}, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outputDir, "hue_palette.png"), path)

	// Map defaults inherit the grid cell size: 24x10 cells at 4px.
	img := decodePNG(t, path)
	require.Equal(t, 96, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())
}

func TestGenerate_SkipsExistingUnlessForced(t *testing.T) {
	outputDir := t.TempDir()
	gen := newTestGenerator(t, outputDir)

	placeholder := []byte("not a png")
	path := filepath.Join(outputDir, "palette0.png")
	require.NoError(t, os.WriteFile(path, placeholder, 0o644))

	// Without force the existing file is left untouched.
	got, err := gen.Generate(context.Background(), Job{Kind: KindPalette, Hue: 0}, false)
	require.NoError(t, err)
	require.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, placeholder, data)

	// With force the swatch is re-rendered.
	_, err = gen.Generate(context.Background(), Job{Kind: KindPalette, Hue: 0}, true)
	require.NoError(t, err)

	img := decodePNG(t, path)
	require.Equal(t, 16, img.Bounds().Dx())
}

// recordingArchive captures WriteSwatch calls for assertions.
type recordingArchive struct {
	kinds []string
	hues  []int
	blobs [][]byte
}

func (a *recordingArchive) WriteSwatch(kind string, hue int, data []byte) error {
	a.kinds = append(a.kinds, kind)
	a.hues = append(a.hues, hue)
	a.blobs = append(a.blobs, data)
	return nil
}

func TestGenerate_ArchiveMode(t *testing.T) {
	s, err := sink.New("png", "default")
	require.NoError(t, err)

	arch := &recordingArchive{}
	gen, err := NewGenerator(Config{
		Grid:    palette.GridConfig{Steps: 4, Cell: 4},
		Sink:    s,
		Archive: arch,
	})
	require.NoError(t, err)

	name, err := gen.Generate(context.Background(), Job{Kind: KindPalette, Hue: 300}, true)
	require.NoError(t, err)
	require.Equal(t, "palette30.png", name)

	require.Equal(t, []string{"palette"}, arch.kinds)
	require.Equal(t, []int{30}, arch.hues)

	// Stored blob must be a decodable image.
	img, err := png.Decode(bytes.NewReader(arch.blobs[0]))
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dx())
}

func TestGenerate_UnknownKind(t *testing.T) {
	gen := newTestGenerator(t, t.TempDir())

	_, err := gen.Generate(context.Background(), Job{Kind: "gradient"}, false)
	require.Error(t, err)
}

func TestGenerate_CancelledContext(t *testing.T) {
	gen := newTestGenerator(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, Job{Kind: KindPalette, Hue: 0}, false)
	require.ErrorIs(t, err, context.Canceled)
}
