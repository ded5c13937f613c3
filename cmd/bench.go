// fargo bench [args...]
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
)

var benchCmd = &cobra.Command{
	Use:   "bench [args...]",
	Short: "Build (if needed) and run benchmarks",
	Long: `Build the release benchmark binary if it is stale and run it. Trailing
arguments are passed verbatim (e.g. fargo bench -- --benchmark_filter=MyBench).`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		orch := builder.New(buildOptions(cmd))
		code, err := orch.Bench(args)
		if err != nil {
			msg.Fatal("%v", err)
		}
		if code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
}
