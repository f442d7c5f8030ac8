package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"unshredder/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
