package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/project"
	"github.com/fargo-build/fargo/internal/settings"
)

// buildOptions assembles the per-invocation options: .fargo/config.toml
// tool settings underneath, explicit command-line flags on top. The result
// is the only configuration the orchestrator ever sees.
func buildOptions(cmd *cobra.Command) builder.Options {
	opts := builder.Options{
		Profile: flagProfile,
		Verbose: flagVerbose,
		Jobs:    flagJobs,
	}

	root, err := project.Locate(".")
	if err != nil {
		return opts // commands that need a root will report this themselves
	}

	s, err := settings.Load(root)
	if err != nil {
		msg.Warn("could not read tool settings: %v", err)
		return opts
	}

	if !cmd.Flags().Changed("profile") && s.Profile != "" {
		opts.Profile = s.Profile
	}
	if !cmd.Flags().Changed("verbose") && s.Verbose {
		opts.Verbose = true
	}
	if !cmd.Flags().Changed("jobs") && s.Jobs > 0 {
		opts.Jobs = s.Jobs
	}

	return opts
}
