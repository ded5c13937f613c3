// fargo - tiny C++ project bootstrap/build helper (Cargo-like)
package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/variant"
)

var (
	flagVerbose bool
	flagProfile string
	flagJobs    int
)

var rootCmd = &cobra.Command{
	Use:   "fargo",
	Short: "Tiny C++ project bootstrap/build helper",
	Long:  `fargo - tiny C++ project bootstrap/build helper (Cargo-like)`,
}

var buildCmd = &cobra.Command{
	Use:   "build [target]",
	Short: "Build the debug variant",
	Long:  `Build the debug variant. With a target name, builds only that target.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doBuild(cmd, variant.Debug, args)
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release [target]",
	Short: "Build the release variant",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doBuild(cmd, variant.Release, args)
	},
}

func doBuild(cmd *cobra.Command, v variant.Variant, args []string) {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	orch := builder.New(buildOptions(cmd))
	if err := orch.Build(v, target); err != nil {
		msg.Fatal("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show verbose output")
	rootCmd.PersistentFlags().StringVarP(&flagProfile, "profile", "p", "", "Use specific configuration profile")
	rootCmd.PersistentFlags().IntVarP(&flagJobs, "jobs", "j", 0, "Parallel build jobs (default: CPU count)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(releaseCmd)
}

func Execute() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		msg.Log("Interrupted by user")
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
