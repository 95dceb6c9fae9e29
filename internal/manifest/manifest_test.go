package manifest_test

import (
	"errors"
	"testing"

	"github.com/oakmoth/gramble/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_HappyPath(t *testing.T) {
	data := []byte(`
[[file]]
alias = ""
path = "main.gram"

[[file]]
alias = "f2"
path = "lib/f2.gram"
`)

	m, err := manifest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "main.gram", m.Files[""])
	assert.Equal(t, "lib/f2.gram", m.Files["f2"])
}

func TestParse_NoTopLevelFile(t *testing.T) {
	data := []byte(`
[[file]]
alias = "f2"
path = "lib/f2.gram"
`)

	_, err := manifest.Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrNoTopLevelFile))
}

func TestParse_DuplicateAlias(t *testing.T) {
	data := []byte(`
[[file]]
alias = "f2"
path = "a.gram"

[[file]]
alias = "f2"
path = "b.gram"
`)

	_, err := manifest.Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrDuplicateAlias))
}

func TestParse_MissingPath(t *testing.T) {
	data := []byte(`
[[file]]
alias = ""
path = ""
`)

	_, err := manifest.Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrNoPath))
}
