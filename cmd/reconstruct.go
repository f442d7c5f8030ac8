package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unshredder/internal/raster"
	"unshredder/internal/reconstruct"
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Reconstruct a shredded image",
	Long: `Reconstruct loads a shredded image, matches strip borders to recover
the original left-to-right order, and writes the reassembled image.`,
	RunE: runReconstruct,
}

func init() {
	reconstructCmd.Flags().StringP("input", "i", "", "Path to the shredded input image")
	reconstructCmd.Flags().StringP("output", "o", "unshredded.png", "Path for the reconstructed output image")
	reconstructCmd.Flags().Int("strip-width", 32, "Pixel columns per strip")
	reconstructCmd.Flags().Int("sampling-distance", 2, "Vertical stride for border sampling")
	reconstructCmd.Flags().String("metric", "sad", "Border distance metric: sad, ssd, luma, or lab")
	_ = reconstructCmd.MarkFlagRequired("input")
	RootCmd.AddCommand(reconstructCmd)
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	if !raster.IsSupportedFormat(output) {
		return fmt.Errorf("unsupported output format %q", output)
	}

	img, err := raster.Load(input)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	log.Info("loaded image",
		zap.String("path", input),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))

	opts := reconstruct.Options{
		StripWidth:       cfg.StripWidth,
		SamplingDistance: cfg.SamplingDistance,
		Metric:           cfg.ParsedMetric(),
		Logger:           log,
	}
	result, err := reconstruct.Reconstruct(img, opts)
	if err != nil {
		return err
	}

	if err := raster.Save(result.Output, output); err != nil {
		return err
	}
	log.Info("wrote reconstructed image",
		zap.String("path", output),
		zap.Int("strips", len(result.Order)))
	return nil
}
