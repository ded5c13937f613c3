package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(content), 0o644))
}

func TestLocateFindsRootFromDescendant(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "cmake_minimum_required(VERSION 3.18)\nproject(demo VERSION 0.1.0)\n")

	nested := filepath.Join(root, "src", "deeply", "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Locate(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	// from the root itself too
	got, err = Locate(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestLocateNearestAncestorWins(t *testing.T) {
	outer := t.TempDir()
	writeDescriptor(t, outer, "project(outer)\n")

	inner := filepath.Join(outer, "vendor", "inner")
	writeDescriptor(t, inner, "project(inner)\n")

	got, err := Locate(inner)
	require.NoError(t, err)
	assert.Equal(t, inner, got)
}

func TestLocateSkipsDescriptorWithoutDeclaration(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "project(demo)\n")

	sub := filepath.Join(root, "third_party")
	writeDescriptor(t, sub, "# no declaration here, just includes\n")

	got, err := Locate(sub)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestLocateNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Locate(dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestName(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "cmake_minimum_required(VERSION 3.18)\nproject( demo VERSION 0.1.0 LANGUAGES CXX)\n")

	name, err := Name(root)
	require.NoError(t, err)
	assert.Equal(t, "demo", name)
}

func TestNameMissingDeclaration(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "add_subdirectory(src)\n")

	_, err := Name(root)
	assert.Error(t, err)
}
