// Package manifest loads the TOML compile manifest (gramble.toml) that
// maps each grammar-source file to the file-alias gramble uses to reference
// it, grounded on internal/tqw's TOML-decoding pattern: a tagged Go struct
// fed straight to BurntSushi/toml, one level of translation removed from
// the domain type the rest of the program actually uses.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNoPath is returned when a manifest entry names no source file.
	ErrNoPath = errors.New("manifest entry has no path")

	// ErrDuplicateAlias is returned when two entries share a file-alias.
	ErrDuplicateAlias = errors.New("duplicate file alias in manifest")

	// ErrNoTopLevelFile is returned when no entry has an empty alias — the
	// compile manifest must name exactly one top-level file.
	ErrNoTopLevelFile = errors.New("manifest has no top-level file (entry with an empty alias)")
)

// fileEntry is the TOML shape of one "[[file]]" table.
type fileEntry struct {
	Alias string `toml:"alias"`
	Path  string `toml:"path"`
}

// rawManifest is the full TOML document shape.
type rawManifest struct {
	Files []fileEntry `toml:"file"`
}

// Manifest is the file-alias → source-path mapping a gramble.toml resolves
// to. Exactly one key is "" (the top-level file internal/compile starts
// translation from).
type Manifest struct {
	Files map[string]string
}

// Load reads and validates the compile manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return Parse(data)
}

// Parse validates and converts raw TOML manifest bytes into a Manifest.
func Parse(data []byte) (Manifest, error) {
	var raw rawManifest
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return fromRaw(raw)
}

func fromRaw(raw rawManifest) (Manifest, error) {
	files := make(map[string]string, len(raw.Files))
	haveTopLevel := false

	for _, f := range raw.Files {
		if f.Path == "" {
			return Manifest{}, fmt.Errorf("%w: alias %q", ErrNoPath, f.Alias)
		}
		if _, exists := files[f.Alias]; exists {
			return Manifest{}, fmt.Errorf("%w: %q", ErrDuplicateAlias, f.Alias)
		}
		files[f.Alias] = f.Path
		if f.Alias == "" {
			haveTopLevel = true
		}
	}

	if !haveTopLevel {
		return Manifest{}, ErrNoTopLevelFile
	}
	return Manifest{Files: files}, nil
}
