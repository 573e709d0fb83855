package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadlec/spinup/pkg/exec"
)

func TestFinalize_MovesAndCommits(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "demo")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "package.json"), []byte(`{"name":"demo"}`), 0644))
	parent := filepath.Join(base, "projects")
	require.NoError(t, os.MkdirAll(parent, 0755))

	mockExec := &exec.MockCommandExecutor{}
	params := testParams("demo")
	params.ParentDir = parent
	rc := testRunContext(mockExec, params, src)

	require.NoError(t, Finalize(rc))

	dest := filepath.Join(parent, "demo")
	assert.NoDirExists(t, src)
	assert.FileExists(t, filepath.Join(dest, "package.json"))

	require.Len(t, mockExec.Commands, 3)
	assert.Equal(t, "git init", mockExec.Commands[0])
	assert.Equal(t, "git add -A", mockExec.Commands[1])
	assert.Equal(t, "git commit -m "+CommitMessage, mockExec.Commands[2])
	for i, dir := range mockExec.Dirs {
		assert.Equal(t, dest, dir, "git command %d must run in the moved project", i)
	}
}

func TestFinalize_DestinationCollision(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "demo")
	require.NoError(t, os.MkdirAll(src, 0755))
	parent := filepath.Join(base, "projects")
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "demo"), 0755))

	mockExec := &exec.MockCommandExecutor{}
	params := testParams("demo")
	params.ParentDir = parent
	rc := testRunContext(mockExec, params, src)

	err := Finalize(rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, mockExec.Commands, "no repository operation may run after a collision")
	assert.DirExists(t, src, "the source project must be left in place")
}

func TestFinalize_InPlace(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "demo")
	require.NoError(t, os.MkdirAll(src, 0755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	mockExec := &exec.MockCommandExecutor{}
	rc := testRunContext(mockExec, testParams("demo"), "demo")

	require.NoError(t, Finalize(rc))
	assert.DirExists(t, src, "parent dir \".\" keeps the project where it is")
	require.Len(t, mockExec.Commands, 3)
}
