package cmd

import (
	"context"
	"fmt"

	"github.com/MeKo-Tech/swatchgen/internal/palette"
	"github.com/MeKo-Tech/swatchgen/internal/pipeline"
	"github.com/MeKo-Tech/swatchgen/internal/sink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var huemapCmd = &cobra.Command{
	Use:   "huemap",
	Short: "Generate the hue/value overview map",
	Long: `Generate a single overview image sweeping the hue wheel column by column,
with each column ramping from near-black to pale white.`,
	RunE: runHuemap,
}

func init() {
	rootCmd.AddCommand(huemapCmd)

	huemapCmd.Flags().Int("hue-steps", palette.DefaultHueSteps, "Number of hue columns across the wheel")
	huemapCmd.Flags().Int("value-steps", palette.DefaultValueSteps, "Number of value rows per column")
	huemapCmd.Flags().Int("cell", palette.DefaultCell, "Cell edge length in pixels")
	huemapCmd.Flags().String("image-format", "png", "Image format: png or bmp")
	huemapCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")
	huemapCmd.Flags().Bool("force", false, "Force regeneration even if the map exists")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"huemap.hue_steps", "hue-steps"},
		{"huemap.value_steps", "value-steps"},
		{"huemap.cell", "cell"},
		{"huemap.image_format", "image-format"},
		{"huemap.png_compression", "png-compression"},
		{"huemap.force", "force"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, huemapCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runHuemap(cmd *cobra.Command, args []string) error {
	hueSteps := viper.GetInt("huemap.hue_steps")
	valueSteps := viper.GetInt("huemap.value_steps")
	cell := viper.GetInt("huemap.cell")
	imageFormat := viper.GetString("huemap.image_format")
	pngCompression := viper.GetString("huemap.png_compression")
	force := viper.GetBool("huemap.force")
	outputDir := viper.GetString("output-dir")

	if logger == nil {
		initLogging()
	}

	logger.Info("Generating hue map",
		"hue_steps", hueSteps,
		"value_steps", valueSteps,
		"cell", cell,
		"output_dir", outputDir,
	)

	snk, err := sink.New(imageFormat, pngCompression)
	if err != nil {
		return err
	}

	gen, err := pipeline.NewGenerator(pipeline.Config{
		Map:       palette.MapConfig{HueSteps: hueSteps, ValueSteps: valueSteps, Cell: cell},
		OutputDir: outputDir,
		Sink:      snk,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	path, err := gen.Generate(context.Background(), pipeline.Job{Kind: pipeline.KindHueMap}, force)
	if err != nil {
		return fmt.Errorf("failed to generate hue map: %w", err)
	}

	logger.Info("Hue map generated", "path", path)

	return nil
}
