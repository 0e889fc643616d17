package raster

// Format selects the byte layout of a buffer's pixels.
type Format uint8

const (
	// FormatRGB8 stores three bytes per pixel in R, G, B order.
	FormatRGB8 Format = iota

	// FormatRGBA8 stores four bytes per pixel in R, G, B, A order. The
	// alpha byte is fixed at 255; nothing in the pipeline blends.
	FormatRGBA8
)

// BytesPerPixel returns the pixel stride in bytes.
func (f Format) BytesPerPixel() int {
	if f == FormatRGBA8 {
		return 4
	}
	return 3
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}
