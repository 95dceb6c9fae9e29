// Package assemble implements the catalog assembler (spec.md §4.6): it
// merges every file's translated block map into a single grule.Catalog,
// resolves the start rule, and verifies every identifier the translator
// recorded as "appeared" actually resolves to a catalog entry.
package assemble

import (
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
)

// FileResult is one file's translate.Result plus the file-alias it was
// translated under ("" for the top-level file).
type FileResult struct {
	FileAlias string
	Blocks    grule.BlockMap
	StartID   string
}

// Assemble merges files into a grule.Catalog, reporting every hard error
// spec.md §4.6 names to sink. It always returns a best-effort catalog;
// callers must check the sink for recorded errors before trusting it.
func Assemble(files []FileResult, appeared map[string]grule.Position, sink diag.Sink) *grule.Catalog {
	cat := grule.NewCatalog()

	seenAlias := make(map[string]bool)
	for _, f := range files {
		if seenAlias[f.FileAlias] {
			sink.Report(diag.New(diag.KindDuplicatedFileAliasName, grule.Position{},
				"file alias %q used by more than one input", f.FileAlias))
			continue
		}
		seenAlias[f.FileAlias] = true

		for _, b := range f.Blocks {
			for _, r := range b.Rules {
				cat.Rules[r.Name] = r
			}
		}

		if f.FileAlias == "" && f.StartID != "" {
			cat.Start = f.StartID
		}
	}

	if cat.Start == "" {
		sink.Report(diag.New(diag.KindNoStartCommandInMainBlock, grule.Position{},
			"no start command was recorded in the top-level file's Main block"))
	}

	for id, pos := range appeared {
		if _, ok := cat.Rules[id]; !ok {
			sink.Report(diag.New(diag.KindUnknownRuleID, pos, "referenced rule id %q is not defined in any translated file", id))
		}
	}

	return cat
}
