package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// symbolBlock returns the bootstrap's Symbol block: whitespace and
// line-ending primitives shared by every other block. Grounded on
// get_symbol_block in the original source.
func symbolBlock() *grule.Block {
	space := ruleDef(".Symbol.Space", grp(nil,
		ex(grule.String, " "),
	))

	lineEnd := ruleDef(".Symbol.LineEnd", grp(nil,
		ex(grule.Id, ".Symbol.Space", "*"),
		ex(grule.String, "\n"),
		ex(grule.Id, ".Symbol.Space", "*"),
	))

	return defineBlock("Symbol", space, lineEnd)
}
