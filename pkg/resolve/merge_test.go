package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlintd/lintd/pkg/rcfile"
)

func loadRC(t *testing.T, content string) *rcfile.Source {
	t.Helper()
	dir := t.TempDir()
	src, err := rcfile.Load(writeRC(t, dir, content))
	require.NoError(t, err)
	return src
}

func TestMerge_Precedence(t *testing.T) {
	src := loadRC(t, "[lint]\nnotes = LEVEL1, ALL_LEVELS\nmax-line-length = 120\n")

	ov, err := compileOverrides(Overrides{"notes": "FIXME"})
	require.NoError(t, err)

	eff := merge(src, ov)

	// Override replaces the file list wholesale, no appending.
	assert.Equal(t, []string{"FIXME"}, eff.Options.Notes)
	assert.Equal(t, FromOverride, eff.Provenance[rcfile.OptNotes])

	// Untouched-by-override options come from the file.
	assert.Equal(t, 120, eff.Options.MaxLineLength)
	assert.Equal(t, FromFile, eff.Provenance[rcfile.OptMaxLineLength])

	// Untouched-by-both options carry the built-in default.
	assert.Equal(t, rcfile.DefaultJobs, eff.Options.Jobs)
	assert.Equal(t, FromDefault, eff.Provenance[rcfile.OptJobs])
}

func TestMerge_FileSetEmptyListWins(t *testing.T) {
	// A file that sets notes to the empty list beats the default; "set to
	// empty" and "not set" are different states.
	src := loadRC(t, "[lint]\nnotes =\n")

	eff := merge(src, nil)
	assert.Empty(t, eff.Options.Notes)
	assert.Equal(t, FromFile, eff.Provenance[rcfile.OptNotes])
}

func TestMerge_NilSourceIsDefaults(t *testing.T) {
	eff := merge(nil, nil)
	assert.Equal(t, rcfile.DefaultNotes, eff.Options.Notes)
	assert.Equal(t, rcfile.DefaultMaxLineLength, eff.Options.MaxLineLength)
	for _, name := range rcfile.Names() {
		assert.Equal(t, FromDefault, eff.Provenance[name])
	}
}

func TestMerge_KeepsWinningSource(t *testing.T) {
	src := loadRC(t, "[lint]\nnotes = A\n")
	ov, err := compileOverrides(Overrides{"notes": "B"})
	require.NoError(t, err)

	eff := merge(src, ov)
	assert.True(t, eff.Source.Same(src),
		"the effective config must reference the winning file source")
}

func TestCompileOverrides_UnknownOption(t *testing.T) {
	_, err := compileOverrides(Overrides{"notse": "TODO"})
	require.Error(t, err)

	var unknown *rcfile.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "notse", unknown.Name)
}

func TestCompileOverrides_BadValue(t *testing.T) {
	_, err := compileOverrides(Overrides{"jobs": "lots"})
	require.Error(t, err)
}
