// Package variant maps abstract build variants to isolated output
// directories, build-type labels and accumulated flag sets.
package variant

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/profile"
	"github.com/fargo-build/fargo/internal/project"
)

type Variant int

const (
	Debug Variant = iota
	Release
	DebugASan
	DebugTSan
)

func (v Variant) String() string {
	switch v {
	case Release:
		return "release"
	case DebugASan:
		return "debug+asan"
	case DebugTSan:
		return "debug+tsan"
	default:
		return "debug"
	}
}

// Subdir is the variant's reserved directory under the build root. Each
// variant gets a disjoint directory so concurrent variants never collide.
func (v Variant) Subdir() string {
	switch v {
	case Release:
		return "release"
	case DebugASan:
		return "debug_asan"
	case DebugTSan:
		return "debug_tsan"
	default:
		return "debug"
	}
}

// BuildType is the label the CMake collaborator consumes. Sanitizer
// variants are debug builds.
func (v Variant) BuildType() string {
	if v == Release {
		return "Release"
	}
	return "Debug"
}

func (v Variant) sanitizer() string {
	switch v {
	case DebugASan:
		return "address"
	case DebugTSan:
		return "thread"
	default:
		return ""
	}
}

// RuntimeEnv returns extra environment entries for binaries produced by
// this variant, tuning sanitizer report output.
func (v Variant) RuntimeEnv() []string {
	switch v {
	case DebugASan:
		return []string{"ASAN_OPTIONS=color=always:print_stats=1:check_initialization_order=1:strict_init_order=1"}
	case DebugTSan:
		return []string{"TSAN_OPTIONS=color=always:print_stats=1:halt_on_error=1"}
	default:
		return nil
	}
}

// Config is the fully resolved build configuration for one variant.
// Constructed fresh per invocation, never persisted.
type Config struct {
	Variant      Variant
	BuildType    string
	Generator    string // empty means the build system's own default (Make)
	CxxStandard  string
	Flags        []string // profile flags first, variant additions appended
	LinkerFlags  string
	ExtraOptions []string
	OutDir       string
}

// lookPath is a seam for tests; generator fallback probes the host with it.
var lookPath = exec.LookPath

// Resolve combines a profile and a variant into a concrete configuration.
// Flag accumulation is append-only: profile flags come first, sanitizer
// instrumentation after, and nothing is deduplicated or reordered.
func Resolve(p *profile.Profile, v Variant, root string) Config {
	cfg := Config{
		Variant:     v,
		BuildType:   v.BuildType(),
		CxxStandard: p.CxxStandard,
		OutDir:      filepath.Join(root, project.BuildDir, v.Subdir()),
	}

	// Generator fallback is deterministic: requested -> Make -> default,
	// and the choice is always observable in the log.
	switch {
	case p.Generator == "Ninja":
		if _, err := lookPath("ninja"); err == nil {
			cfg.Generator = "Ninja"
		} else {
			cfg.Generator = ""
			msg.Log("ninja not found, falling back to Make")
		}
	case p.Generator == "Make" || p.Generator == "":
		cfg.Generator = ""
	default:
		cfg.Generator = p.Generator
	}

	cfg.Flags = append(cfg.Flags, strings.Fields(p.FlagsFor(cfg.BuildType))...)
	if san := v.sanitizer(); san != "" {
		cfg.Flags = append(cfg.Flags, "-fsanitize="+san)
		cfg.LinkerFlags = "-fsanitize=" + san
	}

	cfg.ExtraOptions = strings.Fields(p.ExtraOptions)

	return cfg
}

// GeneratorName is the human-readable name of the chosen generator for
// logging.
func (c Config) GeneratorName() string {
	if c.Generator == "" {
		return "Make"
	}
	return c.Generator
}
