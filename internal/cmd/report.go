package cmd

import (
	"fmt"
	"os"

	"github.com/MeKo-Tech/swatchgen/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an HTML color report",
	Long: `Write an HTML report of the float HSL pipeline: one table block per
saturation level, rows ramping luminance and columns sweeping the hue wheel.
The report goes to stdout unless --out names a file.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("out", "", "Output file (default: stdout)")
	reportCmd.Flags().Int("sat-steps", report.DefaultSatSteps, "Number of saturation divisions (levels rendered is one more)")
	reportCmd.Flags().Int("lum-steps", report.DefaultLumSteps, "Number of luminance divisions per block")
	reportCmd.Flags().Int("hue-step", report.DefaultHueStep, "Hue increment in degrees across each row")
	reportCmd.Flags().Int("cell-px", report.DefaultCellPx, "Cell edge length in pixels")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"report.out", "out"},
		{"report.sat_steps", "sat-steps"},
		{"report.lum_steps", "lum-steps"},
		{"report.hue_step", "hue-step"},
		{"report.cell_px", "cell-px"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, reportCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	out := viper.GetString("report.out")
	satSteps := viper.GetInt("report.sat_steps")
	lumSteps := viper.GetInt("report.lum_steps")
	hueStep := viper.GetInt("report.hue_step")
	cellPx := viper.GetInt("report.cell_px")

	if logger == nil {
		initLogging()
	}

	cfg := report.Config{
		SatSteps: satSteps,
		LumSteps: lumSteps,
		HueStep:  hueStep,
		CellPx:   cellPx,
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := report.Write(w, cfg); err != nil {
		return err
	}

	if out != "" {
		logger.Info("Report written", "path", out)
	}

	return nil
}
