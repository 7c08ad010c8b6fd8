package mila

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home+"/x", expandPath("~/x"))
}

func TestExpandPathEnvVar(t *testing.T) {
	os.Setenv("MILA_TEST_VAR", "libs")
	defer os.Unsetenv("MILA_TEST_VAR")
	assert.Equal(t, "libs/a.ml", expandPath("$MILA_TEST_VAR/a.ml"))
}

func TestResolvePathFindsOnSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/mod.ml", []byte("let x = 1;"), 0644))
	it := New(Options{SearchPath: []string{dir}})
	path, err := it.resolvePath("mod.ml")
	require.NoError(t, err)
	assert.Equal(t, dir+"/mod.ml", path)
}

func TestResolvePathMissingFileErrors(t *testing.T) {
	it := New(Options{SearchPath: []string{t.TempDir()}})
	_, err := it.resolvePath("nope.ml")
	assert.Error(t, err)
}

// A relative name that exists verbatim in the working directory must
// resolve even when the configured search path doesn't include ".".
func TestResolvePathFindsVerbatimRelativeBeforeSearchPath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(cwd)

	require.NoError(t, os.WriteFile(tmp+"/here.ml", []byte("let x = 1;"), 0644))

	it := New(Options{SearchPath: []string{t.TempDir()}})
	path, err := it.resolvePath("here.ml")
	require.NoError(t, err)
	assert.Equal(t, "here.ml", path)
}

func TestResolvePathCollapsesDuplicateSeparators(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/mod.ml", []byte("let x = 1;"), 0644))
	it := New(Options{SearchPath: []string{dir + "//"}})
	path, err := it.resolvePath("sub/../mod.ml")
	require.NoError(t, err)
	assert.Equal(t, dir+"/mod.ml", path)
}
