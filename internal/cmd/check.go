package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check integer conversions against a floating point reference",
	Long: `Sweep the HWB space and compare the fixed-point integer conversion to RGB
against a floating point HSV conversion. Reports the worst per-channel
delta found and fails if it exceeds --max-delta.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Int("max-delta", 3, "Maximum tolerated per-channel delta")
	checkCmd.Flags().Int("hue-stride", 30, "Hue sample stride in tenths of a degree")
	checkCmd.Flags().Int("wb-stride", 50, "Whiteness/blackness sample stride in permille")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"check.max_delta", "max-delta"},
		{"check.hue_stride", "hue-stride"},
		{"check.wb_stride", "wb-stride"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, checkCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDelta := viper.GetInt("check.max_delta")
	hueStride := viper.GetInt("check.hue_stride")
	wbStride := viper.GetInt("check.wb_stride")

	if logger == nil {
		initLogging()
	}

	if hueStride < 1 {
		return fmt.Errorf("invalid hue stride %d: must be positive", hueStride)
	}
	if wbStride < 1 {
		return fmt.Errorf("invalid wb stride %d: must be positive", wbStride)
	}

	logger.Info("Checking conversions",
		"hue_stride", hueStride,
		"wb_stride", wbStride,
		"max_delta", maxDelta,
	)

	var (
		samples int
		worst   int
		worstAt colorspace.HWB
	)

	for h := 0; h < 3600; h += hueStride {
		for w := 0; w <= 1000; w += wbStride {
			for b := 0; w+b <= 1000; b += wbStride {
				c := colorspace.HWB{H: h, W: w, B: b}
				got := colorspace.HWBToRGB(c)
				want := referenceRGB(c)
				if d := channelDelta(got, want); d > worst {
					worst = d
					worstAt = c
				}
				samples++
			}
		}
	}

	logger.Info("Conversion check complete",
		"samples", samples,
		"worst_delta", worst,
		"at", fmt.Sprintf("hwb(%d,%d,%d)", worstAt.H, worstAt.W, worstAt.B),
	)

	if worst > maxDelta {
		return fmt.Errorf("conversion drift %d exceeds limit %d at hwb(%d,%d,%d)",
			worst, maxDelta, worstAt.H, worstAt.W, worstAt.B)
	}

	return nil
}

// referenceRGB converts an HWB color to RGB through go-colorful's floating
// point HSV space, using the identity V = 1 - blackness, S = 1 - whiteness/V.
func referenceRGB(c colorspace.HWB) colorspace.RGB {
	w := float64(c.W) / 1000
	b := float64(c.B) / 1000

	v := 1 - b
	s := 0.0
	if v > 0 {
		s = 1 - w/v
	}

	col := colorful.Hsv(float64(c.H)/10, s, v)
	return colorspace.RGB{
		R: uint8(col.R*255 + 0.5),
		G: uint8(col.G*255 + 0.5),
		B: uint8(col.B*255 + 0.5),
	}
}

// channelDelta returns the largest absolute per-channel difference.
func channelDelta(a, b colorspace.RGB) int {
	d := absInt(int(a.R) - int(b.R))
	if g := absInt(int(a.G) - int(b.G)); g > d {
		d = g
	}
	if bl := absInt(int(a.B) - int(b.B)); bl > d {
		d = bl
	}
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
