package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// miscBlock returns the bootstrap's Misc block: the two identifier
// primitives every other block builds on. Grounded on get_misc_block in the
// original source.
func miscBlock() *grule.Block {
	singleID := ruleDef(".Misc.SingleID", grp(nil,
		ex(grule.CharClass, "[a-zA-Z_]"),
		ex(grule.CharClass, "[a-zA-Z0-9_]", "*"),
	))

	chainID := ruleDef(".Misc.ChainID", grp(nil,
		ex(grule.Id, ".Misc.SingleID"),
		grp([]string{"*", "##"},
			grp(nil,
				ex(grule.String, "."),
				ex(grule.Id, ".Misc.SingleID"),
			),
		),
	))

	return defineBlock("Misc", singleID, chainID)
}
