package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// StartRuleID is the bootstrap catalog's start rule, used to parse any
// grammar-source file's top-level FCPEG production.
const StartRuleID = ".Syntax.FCPEG"

// Blocks returns the bootstrap's block map, keyed the same way
// block_map! keyed the original source's per-block constructor functions.
func Blocks() grule.BlockMap {
	return grule.BlockMap{
		"Main":   mainBlock(),
		"Syntax": syntaxBlock(),
		"Symbol": symbolBlock(),
		"Misc":   miscBlock(),
		"Block":  blockBlock(),
		"Rule":   ruleBlock(),
	}
}

// Catalog flattens Blocks into the grule.Catalog the syntax-tree adapter
// parses grammar-source files against, with StartRuleID selected.
func Catalog() *grule.Catalog {
	cat := grule.NewCatalog()
	cat.Start = StartRuleID
	for _, b := range Blocks() {
		for _, r := range b.Rules {
			cat.Rules[r.Name] = r
		}
	}
	return cat
}
