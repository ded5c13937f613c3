// fargo profile [list|init|new|show]
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/profile"
	"github.com/fargo-build/fargo/internal/project"
)

// profileRoot locates the project root or dies; profile management is
// meaningless outside a project.
func profileRoot() string {
	root, err := project.Locate(".")
	if err != nil {
		msg.Fatal("%v", err)
	}
	return root
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configuration profiles",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names, err := profile.List(profileRoot())
		if err != nil {
			msg.Fatal("%v", err)
		}
		if names == nil {
			msg.Warn("No profiles directory found. Run 'fargo profile init' to create it.")
			return
		}
		msg.Log("Available profiles:")
		for _, name := range names {
			if name == profile.DefaultName {
				fmt.Fprintf(msg.Out, "  %s (default)\n", name)
			} else {
				fmt.Fprintf(msg.Out, "  %s\n", name)
			}
		}
	},
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the profile system with a default profile",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := profile.Init(profileRoot()); err != nil {
			msg.Fatal("%v", err)
		}
		msg.Ok("Profile system initialized with default profile")
	},
}

var profileNewCmd = &cobra.Command{
	Use:     "new <name>",
	Aliases: []string{"create"},
	Short:   "Create a new profile as a copy of the default",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := profileRoot()
		name := args[0]
		if err := profile.Create(root, name); err != nil {
			msg.Fatal("%v", err)
		}
		msg.Ok("Profile '%s' created. Edit %s to customize.", name, profile.Path(root, name))
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a profile's contents",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := profileRoot()
		name := profile.DefaultName
		if len(args) > 0 {
			name = args[0]
		}
		content, err := os.ReadFile(profile.Path(root, name))
		if err != nil {
			msg.Fatal("profile '%s' not found", name)
		}
		msg.Log("Profile: %s", name)
		msg.Out.Write(content)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage configuration profiles",
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileNewCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
