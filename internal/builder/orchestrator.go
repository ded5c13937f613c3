// Package builder orchestrates build actions: it resolves the project root,
// profile and variant, decides staleness, drives the external CMake
// collaborator, and dispatches to the action's artifact consumer. Every
// invocation is a single sequential pass; the only state that survives a
// call lives on disk (profiles, build directories, artifact timestamps).
package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/profile"
	"github.com/fargo-build/fargo/internal/project"
	"github.com/fargo-build/fargo/internal/stale"
	"github.com/fargo-build/fargo/internal/variant"
)

// Options is the explicit per-invocation configuration. There is no
// ambient global state; callers construct one and pass it in.
type Options struct {
	Dir     string // where to start the project-root search; "" means cwd
	Profile string // profile name; "" means default
	Verbose bool
	Jobs    int // parallelism hint forwarded to the build collaborator; 0 means NumCPU
}

func (o Options) startDir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

func (o Options) profileName() string {
	if o.Profile == "" {
		return profile.DefaultName
	}
	return o.Profile
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.NumCPU()
}

type Orchestrator struct {
	opts Options
	tc   Toolchain
}

func New(opts Options) *Orchestrator {
	return &Orchestrator{opts: opts, tc: &cmakeToolchain{verbose: opts.Verbose}}
}

// NewWithToolchain substitutes the external collaborator, for tests.
func NewWithToolchain(opts Options, tc Toolchain) *Orchestrator {
	return &Orchestrator{opts: opts, tc: tc}
}

// invocation is the per-invocation resolution result: root, project name,
// the loaded profile and the variant's concrete configuration. Recomputed on
// every action, never cached across calls.
type invocation struct {
	root string
	name string
	prof *profile.Profile
	cfg  variant.Config
}

func (o *Orchestrator) resolve(v variant.Variant) (invocation, error) {
	root, err := project.Locate(o.opts.startDir())
	if err != nil {
		return invocation{}, err
	}
	name, err := project.Name(root)
	if err != nil {
		return invocation{}, err
	}

	prof, err := profile.Load(root, o.opts.profileName())
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			return invocation{}, err
		}
		// advisory: degrade to defaults, exactly one warning
		msg.Warn("Profile '%s' not found, using defaults", o.opts.profileName())
	}
	if prof.Name != profile.DefaultName {
		msg.Log("Loading profile: %s", prof.Name)
	}

	return invocation{root: root, name: name, prof: prof, cfg: variant.Resolve(prof, v, root)}, nil
}

// artifactPath is the contractually fixed artifact location:
// <outdir>/<project><suffix> plus the platform executable extension.
func artifactPath(outdir, name, suffix string) string {
	ext := ""
	if runtime.GOOS == "windows" {
		ext = ".exe"
	}
	return filepath.Join(outdir, name+suffix+ext)
}

// configureAndBuild invokes the external collaborator. Configure and
// compile failures are the same fatal class; the collaborator's output is
// relayed, not interpreted.
func (o *Orchestrator) configureAndBuild(ctx invocation, target string) error {
	start := time.Now()
	msg.Log("Configuring %s build in %s (using %s)", ctx.cfg.BuildType, ctx.cfg.OutDir, ctx.cfg.GeneratorName())
	if err := o.tc.Configure(ctx.root, &ctx.cfg); err != nil {
		return err
	}
	msg.Ok("%s configuration completed (%ds)", ctx.cfg.BuildType, int(time.Since(start).Seconds()))

	jobs := o.opts.jobs()
	if target != "" {
		msg.Log("Building target '%s' (%s) with %d parallel jobs...", target, ctx.cfg.BuildType, jobs)
	} else {
		msg.Log("Building (%s) with %d parallel jobs...", ctx.cfg.BuildType, jobs)
	}

	buildStart := time.Now()
	if err := o.tc.Build(ctx.root, ctx.cfg.OutDir, jobs, target); err != nil {
		return err
	}
	msg.Ok("Build finished: %s (build: %ds, total: %ds)",
		ctx.cfg.OutDir, int(time.Since(buildStart).Seconds()), int(time.Since(start).Seconds()))
	return nil
}

// ensure makes sure the artifact for (variant, suffix) exists and is fresh
// with respect to the action's input patterns, rebuilding when it is not,
// and defensively re-checks existence afterwards.
func (o *Orchestrator) ensure(v variant.Variant, suffix string, patterns []string) (invocation, string, error) {
	ctx, err := o.resolve(v)
	if err != nil {
		return invocation{}, "", err
	}

	artifact := artifactPath(ctx.cfg.OutDir, ctx.name, suffix)
	verdict, err := stale.Check(artifact, ctx.root, patterns)
	if err != nil {
		return invocation{}, "", err
	}

	if verdict.Stale {
		if verdict.Trigger != "" {
			msg.Log("Source file '%s' is newer than binary. Rebuilding...", verdict.Trigger)
		} else {
			msg.Log("No %s build found. Building first...", v)
		}
		if err := o.configureAndBuild(ctx, ""); err != nil {
			return invocation{}, "", err
		}
	}

	if _, err := os.Stat(artifact); err != nil {
		return invocation{}, "", fmt.Errorf("%w: %s", ErrArtifactMissing, artifact)
	}
	return ctx, artifact, nil
}

// Build performs the build action for a variant. With an explicit target
// the staleness gate is skipped (the target's artifact name is unknown) and
// the collaborator, itself incremental, is always invoked.
func (o *Orchestrator) Build(v variant.Variant, target string) error {
	ctx, err := o.resolve(v)
	if err != nil {
		return err
	}

	if target == "" {
		artifact := artifactPath(ctx.cfg.OutDir, ctx.name, "")
		verdict, err := stale.Check(artifact, ctx.root, runInputs)
		if err != nil {
			return err
		}
		if !verdict.Stale {
			msg.Ok("Build up to date: %s", ctx.cfg.OutDir)
			return nil
		}
	}

	return o.configureAndBuild(ctx, target)
}

// Run builds the debug binary if stale and executes it, relaying the
// process's exit code. A non-zero exit from the program is not a failure of
// the orchestrator.
func (o *Orchestrator) Run(args []string) (int, error) {
	ctx, artifact, err := o.ensure(variant.Debug, "", runInputs)
	if err != nil {
		return 1, err
	}
	msg.Log("Running %s...", ctx.name)
	return o.tc.RunBinary(artifact, args, nil)
}

// Test builds the test binary if stale and runs it. Without trailing
// arguments the discovery runner (ctest) is used; with arguments the raw
// binary receives them verbatim. A non-zero result is fatal.
func (o *Orchestrator) Test(args []string) error {
	ctx, testBinary, err := o.ensure(variant.Debug, "_tests", testInputs)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		msg.Log("Running tests with CTest...")
		if err := o.tc.RunTests(ctx.cfg.OutDir, ctestArgs(ctx.prof)); err != nil {
			if errors.Is(err, ErrToolMissing) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrTestsFailed, err)
		}
		return nil
	}

	msg.Log("Running tests with custom arguments...")
	code, err := o.tc.RunBinary(testBinary, args, nil)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("%w (exit code %d)", ErrTestsFailed, code)
	}
	return nil
}

// Bench builds the release benchmark binary if stale and executes it,
// relaying its exit code like Run. Profile benchmark settings are applied
// first so explicit arguments always win.
func (o *Orchestrator) Bench(args []string) (int, error) {
	ctx, benchBinary, err := o.ensure(variant.Release, "_bench", benchInputs)
	if err != nil {
		return 1, err
	}
	msg.Log("Running benchmarks...")
	return o.tc.RunBinary(benchBinary, append(benchArgs(ctx.prof, args), args...), nil)
}

// ctestArgs derives the discovery runner's arguments from the profile.
func ctestArgs(p *profile.Profile) []string {
	var args []string
	if !strings.EqualFold(p.TestOutputOnFailure, "OFF") {
		args = append(args, "--output-on-failure")
	}
	switch jobs := p.TestParallelJobs; {
	case strings.EqualFold(jobs, "auto"):
		args = append(args, "--parallel", strconv.Itoa(runtime.NumCPU()))
	case jobs != "":
		if n, err := strconv.Atoi(jobs); err == nil && n > 0 {
			args = append(args, "--parallel", jobs)
		} else {
			msg.Warn("ignoring invalid test_parallel_jobs value %q", jobs)
		}
	}
	return args
}

// benchArgs derives default benchmark flags from the profile, skipping any
// flag the user passed explicitly.
func benchArgs(p *profile.Profile, userArgs []string) []string {
	hasFlag := func(name string) bool {
		for _, a := range userArgs {
			if strings.HasPrefix(a, name) {
				return true
			}
		}
		return false
	}

	var args []string
	if v := p.BenchMinTime; v != "" && !hasFlag("--benchmark_min_time") {
		if _, err := strconv.Atoi(v); err == nil {
			v += "s" // bare numbers mean seconds
		}
		args = append(args, "--benchmark_min_time="+v)
	}
	if v := p.BenchRepetitions; v != "" && !hasFlag("--benchmark_repetitions") {
		args = append(args, "--benchmark_repetitions="+v)
	}
	return args
}

// Sanitize builds a sanitizer-instrumented debug variant and runs the main
// binary with the sanitizer's runtime options in its environment.
func (o *Orchestrator) Sanitize(v variant.Variant, args []string) (int, error) {
	ctx, artifact, err := o.ensure(v, "", runInputs)
	if err != nil {
		return 1, err
	}
	msg.Log("Running %s with %s...", ctx.name, sanitizerName(v))
	return o.tc.RunBinary(artifact, args, v.RuntimeEnv())
}

func sanitizerName(v variant.Variant) string {
	if v == variant.DebugTSan {
		return "ThreadSanitizer"
	}
	return "AddressSanitizer"
}

// Clean removes the whole build root; all variants at once. Always
// destructive, never consults staleness.
func (o *Orchestrator) Clean() error {
	root, err := project.Locate(o.opts.startDir())
	if err != nil {
		return err
	}
	buildDir := filepath.Join(root, project.BuildDir)
	if _, err := os.Stat(buildDir); os.IsNotExist(err) {
		msg.Warn("Nothing to clean (no '%s' directory)", project.BuildDir)
		return nil
	}
	msg.Log("Removing '%s' directory", project.BuildDir)
	if err := os.RemoveAll(buildDir); err != nil {
		return err
	}
	msg.Ok("Cleaned build artifacts")
	return nil
}
