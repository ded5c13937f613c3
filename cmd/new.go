// fargo new <name>
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new C++ project",
	Long:  `Create a new C++ project skeleton: CMakeLists.txt with GoogleTest and Google Benchmark, starter sources, a default profile and a git repository.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		if _, err := os.Stat(name); err == nil {
			msg.Fatal("directory '%s' already exists", name)
		}

		msg.Log("Creating new project: %s", name)
		if err := os.MkdirAll(name, 0o755); err != nil {
			msg.Fatal("%v", err)
		}
		if err := scaffold.Create(name, name); err != nil {
			msg.Fatal("%v", err)
		}
		msg.Ok("Done. cd '%s' and start hacking!", name)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
