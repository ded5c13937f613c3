// Package profile loads named build profiles: flat KEY=VALUE files layered
// over compiled-in defaults.
package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/project"
)

const DefaultName = "default"

var (
	// ErrNotFound is advisory: Load still returns usable defaults with it.
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// Profile is the resolved configuration for one build. Parsed once at load
// time; build actions never mutate it.
type Profile struct {
	Name string

	Generator    string
	CxxStandard  string
	DebugFlags   string
	ReleaseFlags string
	ExtraOptions string

	TestParallelJobs    string
	TestOutputOnFailure string

	BenchMinTime     string
	BenchRepetitions string

	DocExtractAll string
	DocCallGraph  string

	AnalysisSeverity string
}

// Defaults returns the compiled-in profile, the authoritative fallback.
func Defaults() *Profile {
	return &Profile{
		Name:                DefaultName,
		Generator:           "Ninja",
		CxxStandard:         "20",
		DebugFlags:          "-Wall -Wextra -g",
		ReleaseFlags:        "-O3 -DNDEBUG",
		ExtraOptions:        "",
		TestParallelJobs:    "auto",
		TestOutputOnFailure: "ON",
		BenchMinTime:        "1",
		BenchRepetitions:    "3",
		DocExtractAll:       "YES",
		DocCallGraph:        "YES",
		AnalysisSeverity:    "warning",
	}
}

// FlagsFor returns the compiler flag string for a build-type label.
func (p *Profile) FlagsFor(buildType string) string {
	if buildType == "Release" {
		return p.ReleaseFlags
	}
	return p.DebugFlags
}

// set assigns one directive to its typed field. Keys are case-insensitive;
// unknown keys are ignored so user profiles may carry extra notes.
func (p *Profile) set(key, value string) {
	switch strings.ToLower(key) {
	case "cmake_generator":
		p.Generator = value
	case "cmake_cxx_standard":
		p.CxxStandard = value
	case "cxx_flags_debug":
		p.DebugFlags = value
	case "cxx_flags_release":
		p.ReleaseFlags = value
	case "cmake_extra_options":
		p.ExtraOptions = value
	case "test_parallel_jobs":
		p.TestParallelJobs = value
	case "test_output_on_failure":
		p.TestOutputOnFailure = value
	case "bench_min_time":
		p.BenchMinTime = value
	case "bench_repetitions":
		p.BenchRepetitions = value
	case "doc_extract_all":
		p.DocExtractAll = value
	case "doc_generate_call_graph":
		p.DocCallGraph = value
	case "static_analysis_severity":
		p.AnalysisSeverity = value
	}
}

// Parse reads KEY=VALUE directives over the defaults. Comment lines start
// with # or ;. A malformed line is skipped with a warning, never fatal.
func Parse(rdr io.Reader, name string) *Profile {
	p := Defaults()
	p.Name = name

	scanner := bufio.NewScanner(rdr)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) == "" {
			msg.Warn("profile %s: skipping malformed line %d: %q", name, lineno, line)
			continue
		}
		p.set(strings.TrimSpace(key), evalValue(strings.TrimSpace(value)))
	}

	return p
}

// Path returns the on-disk location of a named profile.
func Path(root, name string) string {
	return filepath.Join(root, project.ProfilesDir, name+".conf")
}

// Load reads <root>/.fargo/profiles/<name>.conf merged over defaults. A
// missing default profile is a normal first run; a missing named profile
// returns the defaults alongside ErrNotFound so the caller can warn once.
func Load(root, name string) (*Profile, error) {
	f, err := os.Open(Path(root, name))
	if err != nil {
		if os.IsNotExist(err) {
			p := Defaults()
			p.Name = name
			if name == DefaultName {
				return p, nil
			}
			return p, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	return Parse(bufio.NewReader(f), name), nil
}

// Init materializes the default profile file if it does not exist. It never
// overwrites user edits.
func Init(root string) error {
	dir := filepath.Join(root, project.ProfilesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := Path(root, DefaultName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(defaultConf), 0o644)
}

// Create writes a new profile as a copy of the default one, initializing
// the defaults first if needed.
func Create(root, name string) error {
	path := Path(root, name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%q: %w", name, ErrAlreadyExists)
	}
	if err := Init(root); err != nil {
		return err
	}
	content, err := os.ReadFile(Path(root, DefaultName))
	if err != nil {
		return err
	}
	header := fmt.Sprintf("# Custom profile: %s\n", name)
	return os.WriteFile(path, append([]byte(header), content...), 0o644)
}

// List returns the names of all profiles on disk, nil when the profile
// directory does not exist yet.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, project.ProfilesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".conf") {
			names = append(names, strings.TrimSuffix(e.Name(), ".conf"))
		}
	}
	return names, nil
}

const defaultConf = `# Default fargo profile configuration
# Override these values in custom profiles

# Build configuration
CMAKE_GENERATOR=Ninja
CMAKE_CXX_STANDARD=20

# Compiler flags
CXX_FLAGS_DEBUG=-Wall -Wextra -g
CXX_FLAGS_RELEASE=-O3 -DNDEBUG

# Additional CMake options
CMAKE_EXTRA_OPTIONS=

# Test configuration
TEST_PARALLEL_JOBS=auto
TEST_OUTPUT_ON_FAILURE=ON

# Benchmark configuration
BENCH_MIN_TIME=1
BENCH_REPETITIONS=3

# Documentation
DOC_EXTRACT_ALL=YES
DOC_GENERATE_CALL_GRAPH=YES

# Static analysis
STATIC_ANALYSIS_SEVERITY=warning
`
