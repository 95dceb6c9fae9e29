// Package translate implements the grammar-source translator (spec.md
// §4.3): it walks the concrete syntax tree the syntax-tree adapter produced
// for one grammar-source file and lowers it into a grule.BlockMap, reporting
// diagnostics through a shared diag.Sink and recording every referenced rule
// id into a shared "appeared identifiers" map for the catalog assembler
// (§4.6) to validate once every file has been translated.
package translate

import (
	"strings"
	"unicode"

	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// Result is what Translate returns for one file.
type Result struct {
	// Blocks is the file's translated block map.
	Blocks grule.BlockMap

	// StartID is the fully-qualified start-rule id this file's Main block
	// named, if any and if this file is the top-level file (fileAlias=="").
	StartID string
}

// state carries the per-file context threaded through every lowering
// function: where diagnostics go, the shared cross-file "appeared ids" map
// (spec.md §4.3, §4.6), and the file identity used to build fully-qualified
// rule ids and diagnostic positions.
type state struct {
	fileAlias string
	filePath  string
	sink      diag.Sink
	appeared  map[string]grule.Position
}

func (s *state) report(kind diag.Kind, node *synt.Tree, format string, args ...interface{}) {
	s.sink.Report(diag.New(kind, node.Pos(), format, args...))
}

// recordAppeared records id's first occurrence position in the shared
// "appeared" map, per spec.md §4.4's "first position wins."
func (s *state) recordAppeared(id string, node *synt.Tree) {
	if _, ok := s.appeared[id]; ok {
		return
	}
	s.appeared[id] = node.Pos()
}

// lctx is the lowering context shared by every command of one block: the
// shared file state, the current block's alias table, and the current
// block's name (needed for unqualified id resolution and privacy checks).
type lctx struct {
	st        *state
	aliases   grule.AliasTable
	blockName string
}

// isPascalCase reports whether name begins with an uppercase letter, per
// spec.md §4.3/§4.3's naming-rule-violation check. An empty name is never
// PascalCase.
func isPascalCase(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)[0]
	return unicode.IsUpper(r)
}

// splitChain splits a ChainID's matched text on '.' into its components.
func splitChain(text string) []string {
	return strings.Split(text, ".")
}
