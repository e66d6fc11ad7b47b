package rcfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_INI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc")
	writeFile(t, path, "[notes]\nnotes = LEVEL1, ALL_LEVELS\n\n[style]\nmax-line-length = 120\n")

	src, err := Load(path)
	require.NoError(t, err)

	opts := src.Options()
	assert.Equal(t, []string{"LEVEL1", "ALL_LEVELS"}, opts.Notes)
	assert.Equal(t, 120, opts.MaxLineLength)
	assert.True(t, src.IsSet(OptNotes))
	assert.True(t, src.IsSet(OptMaxLineLength))
	assert.False(t, src.IsSet(OptJobs))
	assert.Equal(t, DefaultJobs, opts.Jobs)
	assert.Equal(t, path, src.Origin())
}

func TestLoad_INIWithoutSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".lintrc")
	writeFile(t, path, "notes = FIXME\njobs = 4\n")

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"FIXME"}, src.Options().Notes)
	assert.Equal(t, 4, src.Options().Jobs)
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc.toml")
	writeFile(t, path, "[lint]\nnotes = [\"LEVEL2\", \"ALL_LEVELS\"]\nmax-line-length = 80\n")

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"LEVEL2", "ALL_LEVELS"}, src.Options().Notes)
	assert.Equal(t, 80, src.Options().MaxLineLength)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".lintrc.yaml")
	writeFile(t, path, "lint:\n  notes: [TODO, HACK]\n  jobs: 2\n")

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TODO", "HACK"}, src.Options().Notes)
	assert.Equal(t, 2, src.Options().Jobs)
}

func TestLoad_UnknownOption(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc")
	writeFile(t, path, "[lint]\nnotse = TODO\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)

	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "notse", unknown.Name)
}

func TestLoad_MalformedValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc")
	writeFile(t, path, "[lint]\nmax-line-length = not-a-number\n")

	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc.toml")
	writeFile(t, path, "[lint\nnotes = nope")

	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "lintrc"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lintrc"), 0o755))

	_, err := Load(filepath.Join(dir, "lintrc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestDiscover(t *testing.T) {
	t.Run("probes names in order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".lintrc"), "")
		writeFile(t, filepath.Join(dir, "lintrc.toml"), "")
		assert.Equal(t, filepath.Join(dir, ".lintrc"), Discover(dir))

		writeFile(t, filepath.Join(dir, "lintrc"), "")
		assert.Equal(t, filepath.Join(dir, "lintrc"), Discover(dir))
	})

	t.Run("empty when nothing present", func(t *testing.T) {
		assert.Equal(t, "", Discover(t.TempDir()))
	})

	t.Run("skips directories with rc names", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "lintrc"), 0o755))
		assert.Equal(t, "", Discover(dir))
	})
}

func TestSource_Immutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc")
	writeFile(t, path, "[lint]\nnotes = A, B\n")

	src, err := Load(path)
	require.NoError(t, err)

	opts := src.Options()
	opts.Notes[0] = "MUTATED"
	assert.Equal(t, []string{"A", "B"}, src.Options().Notes)
}

func TestSource_Same(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lintrc")
	writeFile(t, path, "[lint]\nnotes = A\n")

	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)

	assert.True(t, a.Same(a))
	// Equal values, separate parses: not the same source.
	assert.False(t, a.Same(b))
}
