// Package cmd implements the unshredder command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"unshredder/internal/config"
	"unshredder/internal/logger"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "unshredder",
	Short: "Reassemble images shredded into vertical strips",
	Long: `Unshredder reconstructs an image whose equal-width vertical strips
were shuffled into a random horizontal order, by matching strip borders
and following the best-neighbor chain from the detected left edge.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// A console logger keeps CLI error output readable even when the
		// configured format is json.
		l, logErr := logger.New(logger.Config{Level: "info", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, or error")
	RootCmd.PersistentFlags().String("log-format", "console", "Log format: console or json")
}

// loadConfig merges defaults, environment, and the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	// AddFlagSet skips names that are already present, so merging the
	// local and inherited sets is safe.
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.Root().PersistentFlags())

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}
