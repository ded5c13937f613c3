// Package tools wraps the optional external helpers: clang-format,
// clang-tidy, cppcheck and doxygen. A missing optional tool disables the
// feature with a warning; it is never fatal.
package tools

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fargo-build/fargo/internal/builder"
	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/project"
	"github.com/fargo-build/fargo/internal/stale"
)

var (
	// ErrNeedsFormatting reports a failed `format --check` dry run.
	ErrNeedsFormatting = errors.New("some files need formatting")
	// ErrIssuesFound reports static-analysis findings.
	ErrIssuesFound = errors.New("static analysis found potential issues")
)

// Format runs clang-format over every C++ file in the source, test and
// bench trees, in parallel. With checkOnly it only reports files that would
// change and returns ErrNeedsFormatting when any would.
func Format(root string, checkOnly bool) error {
	if _, err := exec.LookPath("clang-format"); err != nil {
		msg.Warn("clang-format not found. Install it to format code.")
		installHint("clang-format")
		return nil
	}

	if err := ensureFile(filepath.Join(root, ".clang-format"), clangFormatConfig, ".clang-format"); err != nil {
		return err
	}

	files, err := stale.CollectFiles(root, builder.SourcePatterns())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		msg.Warn("No C++ source files found to format")
		return nil
	}

	msg.Log("Formatting %d C++ files...", len(files))
	start := time.Now()

	var needsFormatting atomic.Bool
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())

	for _, file := range files {
		path := filepath.Join(root, file)
		eg.Go(func() error {
			if checkOnly {
				if err := exec.Command("clang-format", "--dry-run", "--Werror", path).Run(); err != nil {
					msg.Warn("File needs formatting: %s", file)
					needsFormatting.Store(true)
				}
				return nil
			}
			if err := exec.Command("clang-format", "-i", path).Run(); err != nil {
				msg.Warn("Could not format file: %s", file)
			}
			return nil
		})
	}
	eg.Wait()

	if checkOnly {
		if needsFormatting.Load() {
			return ErrNeedsFormatting
		}
		msg.Ok("All files are properly formatted")
		return nil
	}

	msg.Ok("Code formatting completed (%ds, %d files)", int(time.Since(start).Seconds()), len(files))
	return nil
}

// maxTidyFiles bounds clang-tidy input to keep the output readable.
const maxTidyFiles = 20

// cppcheckEnable maps a profile severity level to a cppcheck --enable set.
func cppcheckEnable(severity string) string {
	switch strings.ToLower(severity) {
	case "all":
		return "all"
	case "error":
		return "" // errors are always reported
	default:
		return "warning,style,performance,portability"
	}
}

// Check runs the available static analyzers against the project, using
// buildDir's compile_commands.json for clang-tidy. severity tunes the
// cppcheck check set. Findings return ErrIssuesFound; having no analyzer
// installed is only advisory.
func Check(root, buildDir, severity string) error {
	foundAnalyzer := false
	hasIssues := false

	if _, err := exec.LookPath("clang-tidy"); err == nil {
		foundAnalyzer = true
		msg.Log("Running clang-tidy analysis...")

		files, err := stale.CollectFiles(root, builder.SourcePatterns())
		if err != nil {
			return err
		}
		var sources []string
		for _, f := range files {
			switch filepath.Ext(f) {
			case ".cpp", ".cxx", ".cc":
				sources = append(sources, filepath.Join(root, f))
			}
		}
		if len(sources) > maxTidyFiles {
			sources = sources[:maxTidyFiles]
		}

		if len(sources) > 0 {
			args := append(sources, "-p", buildDir)
			out, _ := exec.Command("clang-tidy", args...).Output()
			if len(bytes.TrimSpace(out)) > 0 {
				msg.Out.Write(out)
				if bytes.Contains(out, []byte("warning:")) || bytes.Contains(out, []byte("error:")) {
					hasIssues = true
				}
			} else {
				msg.Ok("clang-tidy: No issues found")
			}
		}
	}

	if _, err := exec.LookPath("cppcheck"); err == nil {
		foundAnalyzer = true
		msg.Log("Running cppcheck analysis...")

		args := []string{"--std=c++20", "--suppress=missingIncludeSystem", "--quiet"}
		if enable := cppcheckEnable(severity); enable != "" {
			args = append(args, "--enable="+enable)
		}
		args = append(args, project.SrcDir, project.TestDir, project.BenchDir)
		cmd := exec.Command("cppcheck", args...)
		cmd.Dir = root
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		cmd.Run()

		if stderr.Len() > 0 {
			msg.Out.Write(stderr.Bytes())
			hasIssues = true
		} else {
			msg.Ok("cppcheck: No issues found")
		}
	}

	if !foundAnalyzer {
		msg.Warn("No static analysis tools found. Install clang-tidy or cppcheck.")
		installHint("clang-tidy cppcheck")
		return nil
	}

	if hasIssues {
		return ErrIssuesFound
	}
	msg.Ok("Static analysis completed - no issues found")
	return nil
}

// Doc generates HTML documentation with doxygen, scaffolding a Doxyfile
// and README.md on first use. extractAll and callGraph are Doxygen YES/NO
// toggles; they only affect the scaffolded Doxyfile, user edits win.
func Doc(root, name, extractAll, callGraph string, verbose bool) error {
	if _, err := exec.LookPath("doxygen"); err != nil {
		msg.Warn("Doxygen not found. Install it to generate documentation.")
		installHint("doxygen")
		return nil
	}

	docDir := filepath.Join(root, "docs")
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return err
	}

	doxyfile := filepath.Join(root, "Doxyfile")
	content := fmt.Sprintf(doxyfileTemplate, name, name, doxygenToggle(extractAll), doxygenToggle(callGraph), doxygenToggle(callGraph))
	if err := ensureFile(doxyfile, content, "Doxyfile"); err != nil {
		return err
	}
	if err := ensureFile(filepath.Join(root, "README.md"), fmt.Sprintf(readmeTemplate, name), "README.md"); err != nil {
		return err
	}

	msg.Log("Generating documentation with Doxygen...")
	start := time.Now()

	cmd := exec.Command("doxygen", doxyfile)
	cmd.Dir = root
	if verbose {
		cmd.Stdout = &msg.IndentWriter{Indent: "  ", W: msg.Out}
		cmd.Stderr = &msg.IndentWriter{Indent: "  ", W: msg.ErrOut}
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("documentation generation failed: %w", err)
	}

	index := filepath.Join(docDir, "html", "index.html")
	if _, err := os.Stat(index); err != nil {
		msg.Warn("Documentation generation may have failed. Check Doxyfile configuration.")
		return nil
	}
	msg.Ok("Documentation generated successfully (%ds)", int(time.Since(start).Seconds()))
	msg.Log("Open %s in your browser to view the documentation", index)
	return nil
}

// doxygenToggle normalizes a profile toggle to Doxygen's YES/NO.
func doxygenToggle(v string) string {
	if strings.EqualFold(v, "NO") || strings.EqualFold(v, "OFF") || v == "0" {
		return "NO"
	}
	return "YES"
}

// ensureFile writes a config file unless the user already has one.
func ensureFile(path, content, what string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	msg.Log("Creating %s configuration...", what)
	return os.WriteFile(path, []byte(content), 0o644)
}

func installHint(pkg string) {
	switch runtime.GOOS {
	case "linux":
		msg.Warn("Ubuntu/Debian: sudo apt install %s", pkg)
		msg.Warn("Fedora: sudo dnf install %s", strings.ReplaceAll(pkg, "clang-format", "clang-tools-extra"))
	case "darwin":
		msg.Warn("macOS: brew install %s", pkg)
	case "windows":
		msg.Warn("Windows: install via LLVM releases or a package manager like chocolatey")
	}
}
