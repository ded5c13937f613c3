// fargo format, fargo check, fargo doc
package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/profile"
	"github.com/fargo-build/fargo/internal/project"
	"github.com/fargo-build/fargo/internal/tools"
	"github.com/fargo-build/fargo/internal/variant"
)

var flagFormatCheck bool

// loadProfile reads the selected profile for commands that consume its tool
// settings directly. A missing named profile degrades to defaults, same as
// the build path.
func loadProfile(root string, opts builder.Options) *profile.Profile {
	name := opts.Profile
	if name == "" {
		name = profile.DefaultName
	}
	p, err := profile.Load(root, name)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			msg.Fatal("%v", err)
		}
		msg.Warn("Profile '%s' not found, using defaults", name)
	}
	return p
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format C++ code with clang-format",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := project.Locate(".")
		if err != nil {
			msg.Fatal("%v", err)
		}
		if err := tools.Format(root, flagFormatCheck); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run static analysis (clang-tidy, cppcheck)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := project.Locate(".")
		if err != nil {
			msg.Fatal("%v", err)
		}

		opts := buildOptions(cmd)

		// clang-tidy wants compile_commands.json from a configured debug build
		outdir := filepath.Join(root, project.BuildDir, variant.Debug.Subdir())
		if _, err := os.Stat(filepath.Join(outdir, "compile_commands.json")); os.IsNotExist(err) {
			msg.Warn("No compile_commands.json found. Building first to generate it...")
			if err := builder.New(opts).Build(variant.Debug, ""); err != nil {
				msg.Fatal("%v", err)
			}
		}

		msg.Log("Running static analysis...")
		if err := tools.Check(root, outdir, loadProfile(root, opts).AnalysisSeverity); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Generate documentation with Doxygen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := project.Locate(".")
		if err != nil {
			msg.Fatal("%v", err)
		}
		name, err := project.Name(root)
		if err != nil {
			msg.Fatal("%v", err)
		}
		opts := buildOptions(cmd)
		p := loadProfile(root, opts)
		if err := tools.Doc(root, name, p.DocExtractAll, p.DocCallGraph, opts.Verbose); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

func init() {
	formatCmd.Flags().BoolVarP(&flagFormatCheck, "check", "c", false, "Check formatting without making changes")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(docCmd)
}
