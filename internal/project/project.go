// Package project locates the root of a fargo project and reads its
// identity out of the top-level CMakeLists.txt.
package project

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// DescriptorFile marks a project root when it contains a project() declaration.
	DescriptorFile = "CMakeLists.txt"

	// BuildDir is the root of all variant output directories.
	BuildDir = "build"

	SrcDir   = "src"
	TestDir  = "test"
	BenchDir = "bench"

	// ConfigDir holds profiles and tool settings, relative to the root.
	ConfigDir   = ".fargo"
	ProfilesDir = ".fargo/profiles"
)

var ErrNotFound = errors.New("not inside a fargo project (can't find top-level CMakeLists.txt)")

var nameRegex = regexp.MustCompile(`project\(\s*(\w+)`)

// Locate walks startDir and its ancestors and returns the nearest directory
// whose CMakeLists.txt contains a project declaration. A read failure on a
// candidate descriptor is treated as "not a match".
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		data, err := os.ReadFile(filepath.Join(dir, DescriptorFile))
		if err == nil && strings.Contains(string(data), "project(") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir { // filesystem root
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Name extracts the project name from the root's CMakeLists.txt.
func Name(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, DescriptorFile))
	if err != nil {
		return "", err
	}
	m := nameRegex.FindSubmatch(data)
	if m == nil {
		return "", errors.New("could not extract project name from CMakeLists.txt")
	}
	return string(m[1]), nil
}
