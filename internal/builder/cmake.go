package builder

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/variant"
)

// Toolchain is the narrow contract to the external configure/build
// collaborator and the artifact consumers. The production implementation
// shells out to cmake/ctest; tests substitute fakes.
type Toolchain interface {
	// Configure prepares the variant's output directory. Idempotent: safe
	// to invoke on an already-configured directory.
	Configure(root string, cfg *variant.Config) error
	// Build compiles into outdir with the given parallelism. An empty
	// target builds everything.
	Build(root, outdir string, jobs int, target string) error
	// RunBinary executes an artifact and returns its exit code. A non-zero
	// code is not an error; failing to start the process is.
	RunBinary(bin string, args, extraEnv []string) (int, error)
	// RunTests invokes the discovery-based test runner against outdir with
	// the given runner arguments.
	RunTests(outdir string, args []string) error
}

type cmakeToolchain struct {
	verbose bool
}

// lookPath is a seam for tests.
var lookPath = exec.LookPath

func (t *cmakeToolchain) command(name string, args ...string) (*exec.Cmd, *bytes.Buffer) {
	cmd := exec.Command(name, args...)
	if t.verbose {
		msg.Log("Running: %s", strings.Join(cmd.Args, " "))
		cmd.Stdout = &msg.IndentWriter{Indent: "  ", W: msg.Out}
		cmd.Stderr = &msg.IndentWriter{Indent: "  ", W: msg.ErrOut}
		return cmd, nil
	}
	// quiet mode captures collaborator output and relays it verbatim only
	// on failure
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	return cmd, &buf
}

func (t *cmakeToolchain) runRelaying(cmd *exec.Cmd, buf *bytes.Buffer) error {
	err := cmd.Run()
	if err != nil && buf != nil {
		io.Copy(msg.ErrOut, buf)
	}
	return err
}

func (t *cmakeToolchain) Configure(root string, cfg *variant.Config) error {
	if _, err := lookPath("cmake"); err != nil {
		return fmt.Errorf("%w: cmake", ErrToolMissing)
	}

	args := []string{"-S", ".", "-B", cfg.OutDir, "-DCMAKE_BUILD_TYPE=" + cfg.BuildType}
	if cfg.Generator != "" {
		args = append(args, "-G", cfg.Generator)
	}
	if cfg.CxxStandard != "" {
		args = append(args, "-DCMAKE_CXX_STANDARD="+cfg.CxxStandard)
	}
	if len(cfg.Flags) > 0 {
		args = append(args, "-DCMAKE_CXX_FLAGS="+strings.Join(cfg.Flags, " "))
	}
	if cfg.LinkerFlags != "" {
		args = append(args, "-DCMAKE_EXE_LINKER_FLAGS="+cfg.LinkerFlags)
	}
	args = append(args, cfg.ExtraOptions...)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	cmd, buf := t.command("cmake", args...)
	cmd.Dir = root
	if err := t.runRelaying(cmd, buf); err != nil {
		return fmt.Errorf("%w: cmake configuration: %v", ErrBuildFailed, err)
	}
	return nil
}

func (t *cmakeToolchain) Build(root, outdir string, jobs int, target string) error {
	args := []string{"--build", outdir, "--parallel", strconv.Itoa(jobs)}
	if target != "" {
		args = append(args, "--target", target)
	}
	if t.verbose {
		args = append(args, "--verbose")
	}

	cmd, buf := t.command("cmake", args...)
	cmd.Dir = root
	if err := t.runRelaying(cmd, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}
	return nil
}

func (t *cmakeToolchain) RunBinary(bin string, args, extraEnv []string) (int, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}

func (t *cmakeToolchain) RunTests(outdir string, args []string) error {
	if _, err := lookPath("ctest"); err != nil {
		return fmt.Errorf("%w: ctest", ErrToolMissing)
	}

	// test output is the point, never capture it
	cmd := exec.Command("ctest", args...)
	cmd.Dir = outdir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
