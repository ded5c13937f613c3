// fargo asan [args...], fargo tsan [args...]
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/variant"
)

var asanCmd = &cobra.Command{
	Use:   "asan [args...]",
	Short: "Build and run with AddressSanitizer",
	Long:  `Build a debug binary instrumented with AddressSanitizer and run it. Detects memory errors, leaks and buffer overflows.`,
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		doSanitize(cmd, variant.DebugASan, args)
	},
}

var tsanCmd = &cobra.Command{
	Use:   "tsan [args...]",
	Short: "Build and run with ThreadSanitizer",
	Long:  `Build a debug binary instrumented with ThreadSanitizer and run it. Detects data races and threading issues.`,
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		doSanitize(cmd, variant.DebugTSan, args)
	},
}

func doSanitize(cmd *cobra.Command, v variant.Variant, args []string) {
	orch := builder.New(buildOptions(cmd))
	code, err := orch.Sanitize(v, args)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if code != 0 {
		os.Exit(code)
	}
}

func init() {
	rootCmd.AddCommand(asanCmd)
	rootCmd.AddCommand(tsanCmd)
}
