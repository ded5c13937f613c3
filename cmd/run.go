// fargo run [args...]
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
)

var runCmd = &cobra.Command{
	Use:     "run [args...]",
	Aliases: []string{"r"},
	Short:   "Build (if needed) and run the debug binary",
	Long:    `Build the debug binary if it is stale and run it. Trailing arguments are passed to the binary verbatim.`,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		orch := builder.New(buildOptions(cmd))
		code, err := orch.Run(args)
		if err != nil {
			msg.Fatal("%v", err)
		}
		if code != 0 {
			os.Exit(code) // relay the program's exit code
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
