package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/MeKo-Tech/swatchgen/internal/archive"
	"github.com/MeKo-Tech/swatchgen/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert folder swatches to archive format",
	Long:  `Convert an existing folder of swatch images to a single-file swatch archive.`,
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("input-dir", "./images", "Input directory containing swatch images")
	convertCmd.Flags().StringP("output", "o", "", "Output archive file path (required)")
	convertCmd.Flags().String("name", "swatchgen palettes", "Swatch set name")
	convertCmd.Flags().String("description", "Rendered palette swatches", "Swatch set description")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.input_dir", "input-dir"},
		{"convert.output", "output"},
		{"convert.name", "name"},
		{"convert.description", "description"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputDir := viper.GetString("convert.input_dir")
	outputFile := viper.GetString("convert.output")
	name := viper.GetString("convert.name")
	description := viper.GetString("convert.description")

	if logger == nil {
		initLogging()
	}

	// Validate output file
	if outputFile == "" {
		return fmt.Errorf("--output is required")
	}

	// Verify input directory exists
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	logger.Info("Converting folder swatches to archive",
		"input_dir", inputDir,
		"output", outputFile,
		"name", name,
	)

	// Scan swatch directory
	swatches, format, err := scanSwatchDirectory(inputDir)
	if err != nil {
		return fmt.Errorf("failed to scan swatch directory: %w", err)
	}

	if len(swatches) == 0 {
		return fmt.Errorf("no swatches found in %s", inputDir)
	}

	logger.Info("Found swatches", "count", len(swatches), "format", format)

	// Create archive metadata
	metadata := archive.Metadata{
		Name:        name,
		Format:      format,
		Description: description,
		Version:     "1.0",
	}

	// Create archive writer
	writer, err := archive.New(outputFile, metadata)
	if err != nil {
		return fmt.Errorf("failed to create archive writer: %w", err)
	}
	defer writer.Close()

	// Convert swatches
	logger.Info("Converting swatches...")
	for i, sw := range swatches {
		// Read image file
		data, err := os.ReadFile(sw.path)
		if err != nil {
			logger.Error("Failed to read swatch", "path", sw.path, "error", err)
			continue
		}

		// Write to archive
		if err := writer.WriteSwatch(sw.kind, sw.hue, data); err != nil {
			logger.Error("Failed to write swatch", "kind", sw.kind, "hue", sw.hue, "error", err)
			continue
		}

		if (i+1)%100 == 0 {
			logger.Info("Progress", "converted", i+1, "total", len(swatches))
		}
	}

	// Flush remaining swatches
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush swatches: %w", err)
	}

	logger.Info("Conversion complete", "output", outputFile, "swatches", len(swatches))
	return nil
}

type swatchInfo struct {
	kind string
	hue  int
	path string
}

// scanSwatchDirectory scans a directory for swatch image files and returns
// swatch info plus the image format found.
func scanSwatchDirectory(dir string) ([]swatchInfo, string, error) {
	// Pattern: palette{hue}.png, hsl{hue}.png or hue_palette.png (or .bmp)
	pattern := regexp.MustCompile(`^(palette|hsl|hue_palette)(\d*)\.(png|bmp)$`)

	kinds := map[string]string{
		"palette":     pipeline.KindPalette,
		"hsl":         pipeline.KindHSL,
		"hue_palette": pipeline.KindHueMap,
	}

	var swatches []swatchInfo
	var format string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		// Match filename
		filename := filepath.Base(path)
		matches := pattern.FindStringSubmatch(filename)
		if matches == nil {
			return nil
		}

		// Parse hue; the hue map carries none and stores as hue 0
		hue := 0
		if matches[2] != "" {
			hue, _ = strconv.Atoi(matches[2])
		}

		if format == "" {
			format = matches[3]
		}

		swatches = append(swatches, swatchInfo{
			kind: kinds[matches[1]],
			hue:  hue,
			path: path,
		})

		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return swatches, format, nil
}
