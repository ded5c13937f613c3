// fargo clean, fargo targets
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the build directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := builder.New(buildOptions(cmd)).Clean(); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List available build targets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := builder.New(buildOptions(cmd)).Targets(); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(targetsCmd)
}
