// Package compile orchestrates the whole pipeline: bootstrap catalog →
// syntax-tree adapter → grammar-source translator → catalog assembler.
// Grounded on internal/ictiobus/fishi.go's ProcessFishiMd, which wires an
// equivalent preprocess → lex → build-grammar → validate → build-parser
// chain for the teacher's own embedded DSL.
package compile

import (
	"github.com/google/uuid"

	"github.com/oakmoth/gramble/internal/adapter"
	"github.com/oakmoth/gramble/internal/assemble"
	"github.com/oakmoth/gramble/internal/bootstrap"
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/translate"
)

// Result is what one compile run produces: a unique run id (useful for
// correlating diagnostics in the CLI's console output across a --watch
// rebuild) and the assembled catalog. Callers must inspect sink for
// recorded errors before trusting Catalog — Run always returns a
// best-effort value even when diagnostics failed the run.
type Result struct {
	RunID   string
	Catalog *grule.Catalog
}

// Run translates every source in sources (file-alias → already-read grammar
// text; "" is the top-level file) and assembles them into one catalog,
// reporting every diagnostic to sink. Loading source text from disk and
// logging are both external collaborators (spec.md §1) — Run never touches
// the filesystem itself.
func Run(sources map[string]string, sink diag.Sink) Result {
	parser := adapter.New(bootstrap.Catalog())
	appeared := make(map[string]grule.Position)

	var files []assemble.FileResult
	for alias, text := range sources {
		filePath := alias
		if filePath == "" {
			filePath = "<top-level>"
		}

		tree, err := parser.Parse(bootstrap.StartRuleID, text, filePath)
		if err != nil {
			sink.Report(diag.New(diag.KindInternalError, grule.Position{File: filePath},
				"parsing %q: %v", filePath, err))
			continue
		}

		res := translate.Translate(tree, alias, filePath, appeared, sink)
		files = append(files, assemble.FileResult{FileAlias: alias, Blocks: res.Blocks, StartID: res.StartID})
	}

	cat := assemble.Assemble(files, appeared, sink)
	return Result{RunID: uuid.NewString(), Catalog: cat}
}
