package tools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fargo-build/fargo/internal/msg"
)

func TestCppcheckEnable(t *testing.T) {
	assert.Equal(t, "warning,style,performance,portability", cppcheckEnable("warning"))
	assert.Equal(t, "warning,style,performance,portability", cppcheckEnable(""))
	assert.Equal(t, "all", cppcheckEnable("ALL"))
	assert.Equal(t, "", cppcheckEnable("error"))
}

func TestDoxygenToggle(t *testing.T) {
	assert.Equal(t, "YES", doxygenToggle("YES"))
	assert.Equal(t, "YES", doxygenToggle(""))
	assert.Equal(t, "NO", doxygenToggle("no"))
	assert.Equal(t, "NO", doxygenToggle("OFF"))
	assert.Equal(t, "NO", doxygenToggle("0"))
}

func TestEnsureFileKeepsUserEdits(t *testing.T) {
	old := msg.Out
	msg.Out = &bytes.Buffer{}
	t.Cleanup(func() { msg.Out = old })

	path := filepath.Join(t.TempDir(), ".clang-format")
	require.NoError(t, ensureFile(path, "generated\n", ".clang-format"))
	require.NoError(t, os.WriteFile(path, []byte("edited\n"), 0o644))

	require.NoError(t, ensureFile(path, "generated\n", ".clang-format"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "edited\n", string(data))
}
