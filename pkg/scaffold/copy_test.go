package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverwriteFile_CreatesMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "src", "app", "store.js")

	require.NoError(t, OverwriteFile(dst, []byte("content"), 0644))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestOverwriteFile_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "index.js")
	require.NoError(t, os.WriteFile(dst, []byte("generator default, much longer than the replacement"), 0644))

	require.NoError(t, OverwriteFile(dst, []byte("boilerplate"), 0644))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "boilerplate", string(data), "overwrite must replace, not append")
}

func TestStampTemplates_ReduxVariant(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, StampTemplates(dir, TemplateRedux))

	for _, rel := range []string{
		"src/index.js",
		"src/App.js",
		"src/app/store.js",
		"src/app/hooks.js",
	} {
		data, err := os.ReadFile(projectPath(dir, rel))
		require.NoError(t, err, "missing %s", rel)
		assert.NotEmpty(t, data, "%s must not be empty", rel)
	}
}

func TestStampTemplates_PlainVariant(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, StampTemplates(dir, TemplatePlain))

	assert.FileExists(t, projectPath(dir, "src/index.js"))
	assert.FileExists(t, projectPath(dir, "src/App.js"))
	assert.NoFileExists(t, projectPath(dir, "src/app/store.js"))
	assert.NoFileExists(t, projectPath(dir, "src/app/hooks.js"))
}

func TestStampTemplates_Idempotent(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, StampTemplates(dir, TemplateRedux))
	first, err := os.ReadFile(projectPath(dir, "src/index.js"))
	require.NoError(t, err)

	require.NoError(t, StampTemplates(dir, TemplateRedux))
	second, err := os.ReadFile(projectPath(dir, "src/index.js"))
	require.NoError(t, err)

	assert.Equal(t, first, second, "a second run must produce byte-identical files")
}

func TestCopyFile_PreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hook.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0755))

	dst := filepath.Join(dir, "out", "hook.sh")
	require.NoError(t, CopyFile(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestMoveDir(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "demo")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "src", "index.js"), []byte("entry"), 0644))

	dst := filepath.Join(base, "projects", "demo")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
	require.NoError(t, MoveDir(src, dst))

	assert.NoDirExists(t, src)
	data, err := os.ReadFile(filepath.Join(dst, "src", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "entry", string(data))
}
