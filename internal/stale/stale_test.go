package stale

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

var patterns = []string{"src/**/*.cpp", "src/**/*.h", "CMakeLists.txt"}

func TestMissingArtifactIsAlwaysStale(t *testing.T) {
	root := t.TempDir()

	v, err := Check(filepath.Join(root, "build", "debug", "demo"), root, patterns)
	require.NoError(t, err)
	assert.True(t, v.Stale)
	assert.Empty(t, v.Trigger)
}

func TestFreshArtifact(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)

	write(t, root, "CMakeLists.txt", base)
	write(t, root, "src/main.cpp", base)
	write(t, root, "src/util/helper.h", base)
	artifact := write(t, root, "build/debug/demo", base.Add(10*time.Minute))

	v, err := Check(artifact, root, patterns)
	require.NoError(t, err)
	assert.False(t, v.Stale)
	assert.Empty(t, v.Trigger)
}

func TestNewerInputTriggersStale(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)

	write(t, root, "CMakeLists.txt", base)
	write(t, root, "src/main.cpp", base)
	artifact := write(t, root, "build/debug/demo", base.Add(time.Minute))

	// a source file edited 10 seconds after the artifact was built
	write(t, root, "src/main.cpp", base.Add(time.Minute+10*time.Second))

	v, err := Check(artifact, root, patterns)
	require.NoError(t, err)
	assert.True(t, v.Stale)
	assert.Equal(t, filepath.Join("src", "main.cpp"), v.Trigger)

	// idempotent: no caching, same verdict on a re-check
	v, err = Check(artifact, root, patterns)
	require.NoError(t, err)
	assert.True(t, v.Stale)
}

func TestEqualTimestampIsFresh(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	write(t, root, "src/main.cpp", base)
	artifact := write(t, root, "build/debug/demo", base)

	// strictly newer is required
	v, err := Check(artifact, root, patterns)
	require.NoError(t, err)
	assert.False(t, v.Stale)
}

func TestDescriptorCountsAsInput(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)

	write(t, root, "src/main.cpp", base)
	artifact := write(t, root, "build/debug/demo", base.Add(time.Minute))
	write(t, root, "CMakeLists.txt", base.Add(2*time.Minute))

	v, err := Check(artifact, root, patterns)
	require.NoError(t, err)
	assert.True(t, v.Stale)
	assert.Equal(t, "CMakeLists.txt", v.Trigger)
}

func TestDeepNestingIsWalked(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)

	artifact := write(t, root, "build/debug/demo", base.Add(time.Minute))
	write(t, root, "src/a/b/c/d/deep.cpp", base.Add(2*time.Minute))

	v, err := Check(artifact, root, patterns)
	require.NoError(t, err)
	assert.True(t, v.Stale)
	assert.Equal(t, filepath.Join("src", "a", "b", "c", "d", "deep.cpp"), v.Trigger)
}

func TestCollectFilesDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	write(t, root, "src/zeta.cpp", now)
	write(t, root, "src/alpha.cpp", now)
	write(t, root, "src/util.h", now)
	write(t, root, "CMakeLists.txt", now)

	files, err := CollectFiles(root, patterns)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("src", "alpha.cpp"),
		filepath.Join("src", "zeta.cpp"),
		filepath.Join("src", "util.h"),
		"CMakeLists.txt",
	}, files)
}
