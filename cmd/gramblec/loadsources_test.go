package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oakmoth/gramble/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSources_PlainGrammar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.gram")
	require.NoError(t, os.WriteFile(path, []byte("[Main]{\n+start A.R,\n}"), 0o644))

	mf := manifest.Manifest{Files: map[string]string{"": path}}

	sources, err := loadSources(mf)
	require.NoError(t, err)
	assert.Contains(t, sources[""], "+start A.R,")
}

func TestLoadSources_FromMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.md")
	md := "# Grammar\n\n```gramble\n[Main]{\n+start A.R,\n}\n```\n"
	require.NoError(t, os.WriteFile(path, []byte(md), 0o644))

	*fromMd = true
	defer func() { *fromMd = false }()

	mf := manifest.Manifest{Files: map[string]string{"": path}}

	sources, err := loadSources(mf)
	require.NoError(t, err)
	assert.Contains(t, sources[""], "+start A.R,")
	assert.NotContains(t, sources[""], "# Grammar")
}

func TestLoadSources_MissingFile(t *testing.T) {
	mf := manifest.Manifest{Files: map[string]string{"": "/nonexistent/path.gram"}}

	_, err := loadSources(mf)
	assert.Error(t, err)
}
