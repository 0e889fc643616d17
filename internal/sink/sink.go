// Package sink encodes rendered swatch buffers into image files.
package sink

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/MeKo-Tech/swatchgen/internal/raster"
	"golang.org/x/image/bmp"
)

// Image formats understood by the sink.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Sink writes raster buffers as encoded image files.
type Sink struct {
	format      string
	compression png.CompressionLevel
}

// New creates a sink for the given image format. compression selects the PNG
// compression level (default, speed, best, none) and is ignored for BMP.
func New(format, compression string) (*Sink, error) {
	if format != FormatPNG && format != FormatBMP {
		return nil, fmt.Errorf("invalid image format %q: must be 'png' or 'bmp'", format)
	}

	level, err := parseCompression(compression)
	if err != nil {
		return nil, err
	}

	return &Sink{
		format:      format,
		compression: level,
	}, nil
}

func parseCompression(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	}
	return 0, fmt.Errorf("invalid compression %q: must be one of default, speed, best, none", name)
}

// Ext returns the file extension for the sink's format, including the dot.
func (s *Sink) Ext() string {
	return "." + s.format
}

// Encode writes buf to w in the sink's image format.
func (s *Sink) Encode(w io.Writer, buf *raster.Buffer) error {
	img := buf.NRGBA()

	if s.format == FormatBMP {
		return bmp.Encode(w, img)
	}

	enc := png.Encoder{CompressionLevel: s.compression}
	return enc.Encode(w, img)
}

// Write encodes buf into a new file at path.
func (s *Sink) Write(path string, buf *raster.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	if err := s.Encode(f, buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.format, err)
	}

	return nil
}
