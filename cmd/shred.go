package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unshredder/internal/raster"
	"unshredder/internal/reconstruct"
)

var shredCmd = &cobra.Command{
	Use:   "shred",
	Short: "Shred an image into shuffled vertical strips",
	Long: `Shred splits an image into equal-width vertical strips and writes them
back in a seeded pseudorandom order. Useful for producing test inputs
for the reconstruct command.`,
	RunE: runShred,
}

func init() {
	shredCmd.Flags().StringP("input", "i", "", "Path to the input image")
	shredCmd.Flags().StringP("output", "o", "shredded.png", "Path for the shredded output image")
	shredCmd.Flags().Int("strip-width", 32, "Pixel columns per strip")
	shredCmd.Flags().Int64("seed", 1, "Seed for the strip permutation")
	_ = shredCmd.MarkFlagRequired("input")
	RootCmd.AddCommand(shredCmd)
}

func runShred(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	seed, _ := cmd.Flags().GetInt64("seed")

	img, err := raster.Load(input)
	if err != nil {
		return err
	}

	shredded, order, err := reconstruct.Shred(img, cfg.StripWidth, seed)
	if err != nil {
		return err
	}

	if err := raster.Save(shredded, output); err != nil {
		return err
	}
	log.Info("wrote shredded image",
		zap.String("path", output),
		zap.Int64("seed", seed),
		zap.Ints("order", order))
	return nil
}
