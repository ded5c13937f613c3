// Package scaffold materializes a new C++ project skeleton: CMake
// descriptor, starter sources, tests, benchmarks and the default profile.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/profile"
	"github.com/fargo-build/fargo/internal/project"
)

// Create lays out a new project named name inside dir. Existing files are
// never overwritten. The directory is also initialized as a git repository;
// failure there is advisory only.
func Create(dir, name string) error {
	files := []struct {
		path    string
		content string
	}{
		{project.DescriptorFile, fmt.Sprintf(cmakeListsTemplate, name)},
		{filepath.Join(project.SrcDir, "main.cpp"), mainTemplate},
		{filepath.Join(project.TestDir, "example_test.cpp"), testTemplate},
		{filepath.Join(project.BenchDir, "example_bench.cpp"), benchTemplate},
		{".gitignore", gitignoreTemplate},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.path), f.content); err != nil {
			return err
		}
	}

	if err := profile.Init(dir); err != nil {
		return err
	}

	if _, err := git.PlainInit(dir, false); err != nil {
		msg.Warn("could not initialize git repository: %v", err)
	}

	return nil
}

// writeFile creates path (and its parents), skipping files that already
// exist.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	msg.Log("Created file: %s", filepath.ToSlash(path))
	return nil
}
