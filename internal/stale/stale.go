// Package stale decides whether a built artifact must be regenerated,
// using file modification timestamps only. This is a deliberate
// approximation: a touched-but-unchanged input causes a spurious rebuild,
// and a backdated edit is missed. There is no dependency graph and no
// caching; every check re-walks the filesystem.
package stale

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Verdict reports whether a rebuild is needed and, when an input caused it,
// which file triggered the decision.
type Verdict struct {
	Stale   bool
	Trigger string // relative to the project root; empty when the artifact is absent or fresh
}

// Check compares the artifact's mtime against every file matched by the
// given glob patterns under root. A missing artifact short-circuits to
// stale. Enumeration is deterministic: pattern order first, then lexical
// order within each pattern; the first strictly newer input wins.
func Check(artifactPath, root string, patterns []string) (Verdict, error) {
	stat, err := os.Stat(artifactPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Verdict{Stale: true}, nil
		}
		return Verdict{}, err
	}
	artifactTime := stat.ModTime()

	fsys := os.DirFS(root)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return Verdict{}, err
		}
		slices.Sort(matches)
		for _, match := range matches {
			mtime, err := mtimeOf(fsys, match)
			if err != nil {
				continue // racing deletes fall through to the next input
			}
			if mtime.After(artifactTime) {
				return Verdict{Stale: true, Trigger: filepath.FromSlash(match)}, nil
			}
		}
	}

	return Verdict{}, nil
}

func mtimeOf(fsys fs.FS, name string) (time.Time, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// CollectFiles returns every file matched by the patterns under root, as
// paths relative to root, in the same deterministic order Check uses.
func CollectFiles(root string, patterns []string) ([]string, error) {
	fsys := os.DirFS(root)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		slices.Sort(matches)
		for _, match := range matches {
			files = append(files, filepath.FromSlash(match))
		}
	}
	return files, nil
}
