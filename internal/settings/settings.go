// Package settings reads the optional per-project tool configuration at
// .fargo/config.toml. Command-line flags override anything set here; the
// merged result travels as an explicit options value, never as global state.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/fargo-build/fargo/internal/project"
)

const Filename = "config.toml"

type Settings struct {
	Profile string `toml:"profile"`
	Verbose bool   `toml:"verbose"`
	Jobs    int    `toml:"jobs"`
}

// Load reads <root>/.fargo/config.toml. A missing file yields the zero
// value; a malformed file is an error the caller reports.
func Load(root string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(filepath.Join(root, project.ConfigDir, Filename))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return s, errors.New(derr.String())
		}
		return s, err
	}
	return s, nil
}
