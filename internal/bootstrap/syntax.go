package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// syntaxBlock returns the bootstrap's Syntax block: the single top-level
// FCPEG production. Grounded on get_syntax_block in the original source.
//
// The original grammar ends FCPEG with an explicit EOF match against a "\0"
// sentinel appended to preprocessed source. internal/packrat's Runtime.Parse
// already requires the whole input to be consumed by the start rule, so
// that trailing EOF match is redundant here and is dropped.
func syntaxBlock() *grule.Block {
	fcpeg := ruleDef(".Syntax.FCPEG", grp(nil,
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.Id, ".Symbol.LineEnd", "*", "#"),
		grp([]string{"*"},
			grp(nil,
				ex(grule.Id, ".Block.Block"),
				ex(grule.Id, ".Symbol.LineEnd", "+", "#"),
			),
		),
		ex(grule.Id, ".Symbol.LineEnd", "*", "#"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
	))

	return defineBlock("Syntax", fcpeg)
}
