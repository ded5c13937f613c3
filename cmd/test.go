// fargo test [args...]
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
)

var testCmd = &cobra.Command{
	Use:   "test [args...]",
	Short: "Build (if needed) and run tests",
	Long: `Build the test binary if it is stale and run it. Without arguments the
CTest discovery runner is used; with arguments the test binary is invoked
directly (e.g. fargo test -- --gtest_filter=MyTest*).`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		orch := builder.New(buildOptions(cmd))
		if err := orch.Test(args); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
