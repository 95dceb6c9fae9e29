// Package adapter is the thin seam between the grammar-source translator
// (internal/translate) and whatever engine actually matches text against a
// compiled rule graph. Its Parser interface is grounded on ictiobus.go's
// Parser interface in the teacher repo, which keeps the LL1/SLR/LALR/CLR
// backends swappable behind one method; here there is exactly one backend,
// internal/packrat, but the seam is kept so a future table-driven engine
// could be dropped in without touching internal/compile.
package adapter

import (
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/packrat"
	"github.com/oakmoth/gramble/internal/synt"
)

// Parser matches source text against a rule id from a catalog, producing a
// concrete syntax tree.
type Parser interface {
	Parse(startID, text, file string) (*synt.Tree, error)
}

// packratParser is the default Parser, wrapping internal/packrat.Runtime.
type packratParser struct {
	rt *packrat.Runtime
}

// New returns the default Parser for catalog, backed by the packrat engine.
func New(catalog *grule.Catalog) Parser {
	return &packratParser{rt: packrat.New(catalog)}
}

func (p *packratParser) Parse(startID, text, file string) (*synt.Tree, error) {
	return p.rt.Parse(startID, text, file)
}
