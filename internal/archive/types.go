// Package archive provides single-file SQLite storage for rendered swatch sets.
package archive

import "fmt"

// Metadata describes a swatch archive.
type Metadata struct {
	Name        string // Human-readable archive identifier
	Format      string // Swatch image encoding (png, bmp)
	Description string // Human-readable description
	Version     string // Version string
	HueStep     int    // Hue sweep increment in degrees
	Steps       int    // Swatch grid steps per axis
	Cell        int    // Cell edge length in pixels
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Format != "" {
		result["format"] = m.Format
	}
	if m.Description != "" {
		result["description"] = m.Description
	}
	if m.Version != "" {
		result["version"] = m.Version
	}
	if m.HueStep > 0 {
		result["hue_step"] = fmt.Sprintf("%d", m.HueStep)
	}
	if m.Steps > 0 {
		result["steps"] = fmt.Sprintf("%d", m.Steps)
	}
	if m.Cell > 0 {
		result["cell"] = fmt.Sprintf("%d", m.Cell)
	}

	return result
}
