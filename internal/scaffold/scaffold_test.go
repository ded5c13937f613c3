package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fargo-build/fargo/internal/msg"
	"github.com/fargo-build/fargo/internal/profile"
	"github.com/fargo-build/fargo/internal/project"
)

func quiet(t *testing.T) {
	t.Helper()
	oldOut, oldErr := msg.Out, msg.ErrOut
	msg.Out, msg.ErrOut = &bytes.Buffer{}, &bytes.Buffer{}
	t.Cleanup(func() { msg.Out, msg.ErrOut = oldOut, oldErr })
}

func TestCreate(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	require.NoError(t, Create(dir, "myapp"))

	descriptor, err := os.ReadFile(filepath.Join(dir, project.DescriptorFile))
	require.NoError(t, err)
	assert.Contains(t, string(descriptor), "project(myapp")

	for _, path := range []string{
		filepath.Join(project.SrcDir, "main.cpp"),
		filepath.Join(project.TestDir, "example_test.cpp"),
		filepath.Join(project.BenchDir, "example_bench.cpp"),
		".gitignore",
	} {
		assert.FileExists(t, filepath.Join(dir, path))
	}

	// scaffolded tree is a locatable project
	root, err := project.Locate(filepath.Join(dir, project.SrcDir))
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	name, err := project.Name(dir)
	require.NoError(t, err)
	assert.Equal(t, "myapp", name)
}

func TestCreateWritesDefaultProfile(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	require.NoError(t, Create(dir, "myapp"))

	assert.FileExists(t, profile.Path(dir, profile.DefaultName))

	p, err := profile.Load(dir, profile.DefaultName)
	require.NoError(t, err)
	assert.Equal(t, "Ninja", p.Generator)
}

func TestCreateInitializesGit(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	require.NoError(t, Create(dir, "myapp"))
	assert.DirExists(t, filepath.Join(dir, ".git"))
}

func TestCreateNeverOverwrites(t *testing.T) {
	quiet(t)
	dir := t.TempDir()

	existing := filepath.Join(dir, project.SrcDir, "main.cpp")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("// mine\n"), 0o644))

	require.NoError(t, Create(dir, "myapp"))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "// mine\n", string(data))
}
