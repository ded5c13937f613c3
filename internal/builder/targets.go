package builder

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/project"
	"github.com/fargo-build/fargo/internal/variant"
)

// Targets lists the build targets known to the debug build directory,
// querying whichever generator produced it. Without a build directory it
// falls back to the artifact names the CMake template is expected to
// declare. No staleness check, no artifact involved.
func (o *Orchestrator) Targets() error {
	root, err := project.Locate(o.opts.startDir())
	if err != nil {
		return err
	}
	outdir := filepath.Join(root, project.BuildDir, variant.Debug.Subdir())

	if _, err := os.Stat(outdir); os.IsNotExist(err) {
		name, err := project.Name(root)
		if err != nil {
			return err
		}
		msg.Warn("No build directory found. Run 'fargo build' first.")
		msg.Log("Expected targets based on CMakeLists.txt:")
		fmt.Fprintf(msg.Out, "  %s (main executable)\n", name)
		fmt.Fprintf(msg.Out, "  %s_tests (unit tests)\n", name)
		fmt.Fprintf(msg.Out, "  %s_bench (benchmarks)\n", name)
		return nil
	}

	msg.Log("Available build targets:")
	switch {
	case exists(filepath.Join(outdir, "build.ninja")) && hasTool("ninja"):
		return listNinjaTargets(outdir)
	case exists(filepath.Join(outdir, "Makefile")):
		return listMakeTargets(outdir)
	default:
		msg.Warn("No build system found. Run 'fargo build' first.")
		return nil
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func hasTool(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

func listNinjaTargets(outdir string) error {
	out, err := exec.Command("ninja", "-C", outdir, "-t", "targets").Output()
	if err != nil {
		msg.Warn("Could not get targets from ninja")
		return nil
	}

	var targets []string
	for _, line := range strings.Split(string(out), "\n") {
		if name, _, found := strings.Cut(line, ":"); found && !strings.HasPrefix(line, "#") {
			targets = append(targets, name)
		}
	}
	slices.Sort(targets)
	targets = slices.Compact(targets)
	for _, target := range targets {
		fmt.Fprintf(msg.Out, "  %s\n", target)
	}
	return nil
}

func listMakeTargets(outdir string) error {
	out, err := exec.Command("make", "-C", outdir, "help").Output()
	if err != nil {
		msg.Warn("Could not get targets from make")
		return nil
	}

	for _, line := range strings.Split(string(out), "\n") {
		if after, found := strings.CutPrefix(line, "..."); found {
			fmt.Fprintf(msg.Out, "  %s\n", strings.TrimSpace(after))
		}
	}
	return nil
}
