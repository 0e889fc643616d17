package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/swatchgen/internal/archive"
	"github.com/MeKo-Tech/swatchgen/internal/palette"
	"github.com/MeKo-Tech/swatchgen/internal/pipeline"
	"github.com/MeKo-Tech/swatchgen/internal/sink"
	"github.com/MeKo-Tech/swatchgen/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate palette swatches",
	Long: `Generate whiteness/blackness palette swatches for a single hue or for a
sweep across the hue wheel. Sweep mode is the default; --hue switches to a
single swatch. With --format=archive a sweep is written into a single-file
swatch archive instead of a folder of images.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Single hue flags
	generateCmd.Flags().Int("hue", -1, "Hue in degrees, 0-359 (for single swatch mode)")

	// Sweep flags
	generateCmd.Flags().Int("hue-step", 30, "Hue increment in degrees for sweep mode")
	generateCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	generateCmd.Flags().Bool("progress", true, "Show progress during sweep generation")

	// Common flags
	generateCmd.Flags().Bool("force", false, "Force regeneration even if swatch exists")
	generateCmd.Flags().Int("steps", palette.DefaultSteps, "Whiteness/blackness steps per grid axis")
	generateCmd.Flags().Int("cell", palette.DefaultCell, "Cell edge length in pixels")
	generateCmd.Flags().Bool("with-hsl", false, "Also generate a float HSL grid alongside each palette grid")
	generateCmd.Flags().String("image-format", "png", "Image format: png or bmp")
	generateCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	// Output format flags
	generateCmd.Flags().String("format", "folder", "Output format: folder or archive")
	generateCmd.Flags().String("output-file", "", "Output file path for archive format (e.g., swatches.swatchdb)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.hue", "hue"},
		{"generate.hue_step", "hue-step"},
		{"generate.workers", "workers"},
		{"generate.progress", "progress"},
		{"generate.force", "force"},
		{"generate.steps", "steps"},
		{"generate.cell", "cell"},
		{"generate.with_hsl", "with-hsl"},
		{"generate.image_format", "image-format"},
		{"generate.png_compression", "png-compression"},
		{"generate.format", "format"},
		{"generate.output_file", "output-file"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Read all config values
	hue := viper.GetInt("generate.hue")
	hueStep := viper.GetInt("generate.hue_step")
	workers := viper.GetInt("generate.workers")
	showProgress := viper.GetBool("generate.progress")
	force := viper.GetBool("generate.force")
	steps := viper.GetInt("generate.steps")
	cell := viper.GetInt("generate.cell")
	withHSL := viper.GetBool("generate.with_hsl")
	outputDir := viper.GetString("output-dir")
	imageFormat := viper.GetString("generate.image_format")
	pngCompression := viper.GetString("generate.png_compression")
	format := viper.GetString("generate.format")
	outputFile := viper.GetString("generate.output_file")

	if logger == nil {
		initLogging()
	}

	// Validate format
	if format != "folder" && format != "archive" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'archive'", format)
	}

	// Validate archive requirements
	if format == "archive" {
		if outputFile == "" {
			return fmt.Errorf("--output-file is required when using --format=archive")
		}
		if hue >= 0 {
			return fmt.Errorf("archive format requires sweep mode (omit --hue)")
		}
	}

	// Determine mode: single swatch (hue provided) or sweep
	if hue >= 0 {
		return runSingleGenerate(hue, steps, cell, force, outputDir, imageFormat, pngCompression, withHSL)
	}

	return runSweepGenerate(hueStep, steps, cell, workers, showProgress, force, outputDir, imageFormat, pngCompression, format, outputFile, withHSL)
}

func runSingleGenerate(hue, steps, cell int, force bool, outputDir, imageFormat, pngCompression string, withHSL bool) error {
	logger.Info("Starting swatch generation",
		"hue", hue,
		"steps", steps,
		"cell", cell,
		"output_dir", outputDir,
		"force", force,
		"image_format", imageFormat,
		"with_hsl", withHSL,
	)

	if hue > 359 {
		return fmt.Errorf("invalid hue %d: must be between 0 and 359", hue)
	}

	snk, err := sink.New(imageFormat, pngCompression)
	if err != nil {
		return err
	}

	gen, err := pipeline.NewGenerator(pipeline.Config{
		Grid:      palette.GridConfig{Steps: steps, Cell: cell},
		OutputDir: outputDir,
		Sink:      snk,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	jobs := []pipeline.Job{{Kind: pipeline.KindPalette, Hue: hue * 10}}
	if withHSL {
		jobs = append(jobs, pipeline.Job{Kind: pipeline.KindHSL, Hue: hue * 10})
	}

	for _, job := range jobs {
		path, err := gen.Generate(context.Background(), job, force)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", job.Name(), err)
		}
		logger.Info("Swatch generated", "name", job.Name(), "path", path)
	}

	return nil
}

func runSweepGenerate(hueStep, steps, cell, workers int, showProgress, force bool, outputDir, imageFormat, pngCompression, format, outputFile string, withHSL bool) error {
	// Validate hue step
	if hueStep < 1 || hueStep > 360 {
		return fmt.Errorf("invalid hue step %d: must be between 1 and 360", hueStep)
	}

	// Default workers to CPU count
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tasks := buildSweepTasks(hueStep, withHSL, force)

	logger.Info("Starting sweep generation",
		"hue_step", hueStep,
		"swatches", len(tasks),
		"workers", workers,
		"output_dir", outputDir,
		"format", format,
	)

	snk, err := sink.New(imageFormat, pngCompression)
	if err != nil {
		return err
	}

	// Create archive writer if needed
	var archiveWriter *archive.Writer
	if format == "archive" {
		metadata := archive.Metadata{
			Name:        "swatchgen palettes",
			Format:      imageFormat,
			Description: "Hue sweep of whiteness/blackness palette swatches",
			Version:     "1.0",
			HueStep:     hueStep,
			Steps:       steps,
			Cell:        cell,
		}

		archiveWriter, err = archive.New(outputFile, metadata)
		if err != nil {
			return fmt.Errorf("failed to create archive writer: %w", err)
		}
		defer archiveWriter.Close()

		logger.Info("Archive writer created", "path", outputFile)
	}

	cfg := pipeline.Config{
		Grid:      palette.GridConfig{Steps: steps, Cell: cell},
		OutputDir: outputDir,
		Sink:      snk,
		Logger:    logger,
	}
	if archiveWriter != nil {
		cfg.Archive = archiveWriter
	}

	gen, err := pipeline.NewGenerator(cfg)
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	// Setup progress tracking
	progress := worker.NewProgress(len(tasks), showProgress)

	// Create worker pool
	pool := worker.New(worker.Config{
		Workers:    workers,
		Generator:  gen,
		OnProgress: progress.Callback(),
	})

	logger.Info("Generating swatches", "count", len(tasks))
	results := pool.Run(ctx, tasks)
	progress.Done()

	// Check for failures
	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Swatch generation failed", "name", r.Task.Job.Name(), "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	// Flush archive writer if used
	if archiveWriter != nil {
		logger.Info("Flushing swatch archive...")
		if err := archiveWriter.Flush(); err != nil {
			return fmt.Errorf("failed to flush archive: %w", err)
		}
		logger.Info("Archive generation complete", "path", outputFile)
	}

	if failedCount > 0 {
		return fmt.Errorf("%d swatches failed to generate", failedCount)
	}

	return nil
}

// buildSweepTasks lists the render jobs for a hue sweep. Hues run from 0 up
// to but not including 360 degrees, so the default step of 30 yields 12
// palette grids. With withHSL set each hue also gets a float HSL grid job.
func buildSweepTasks(hueStep int, withHSL, force bool) []worker.Task {
	var tasks []worker.Task
	for hue := 0; hue < 360; hue += hueStep {
		tasks = append(tasks, worker.Task{
			Job:   pipeline.Job{Kind: pipeline.KindPalette, Hue: hue * 10},
			Force: force,
		})
		if withHSL {
			tasks = append(tasks, worker.Task{
				Job:   pipeline.Job{Kind: pipeline.KindHSL, Hue: hue * 10},
				Force: force,
			})
		}
	}
	return tasks
}
