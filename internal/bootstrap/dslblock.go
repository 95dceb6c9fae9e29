package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// blockBlock returns the bootstrap's Block block: the grammar's structural
// productions (block headers, commands, comments, Define/Start/Use).
// Grounded on get_block_block in the original source.
func blockBlock() *grule.Block {
	block := ruleDef(".Block.Block", grp(nil,
		ex(grule.String, "[", "#"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.Id, ".Misc.SingleID"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, "]", "#"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, "{", "#"),
		ex(grule.Id, ".Symbol.LineEnd", "+", "#"),
		grp([]string{"*"},
			grp(nil,
				ex(grule.Id, ".Block.Cmd"),
				ex(grule.Id, ".Symbol.LineEnd", "+", "#"),
			),
		),
		ex(grule.String, "}", "#"),
	))

	cmd := ruleDef(".Block.Cmd", grp([]string{":"},
		grp(nil, ex(grule.Id, ".Block.CommentCmd")),
		grp(nil, ex(grule.Id, ".Block.DefineCmd")),
		grp(nil, ex(grule.Id, ".Block.StartCmd")),
		grp(nil, ex(grule.Id, ".Block.UseCmd")),
	))

	comment := ruleDef(".Block.CommentCmd", grp(nil,
		ex(grule.String, "%", "#"),
		grp([]string{"*", "##"},
			grp(nil,
				ex(grule.String, ",", "!"),
				ex(grule.Id, ".Symbol.LineEnd", "!"),
				ex(grule.Wildcard, "."),
			),
		),
		ex(grule.String, ",", "#"),
	))

	define := ruleDef(".Block.DefineCmd", grp(nil,
		ex(grule.Id, ".Misc.SingleID"),
		ex(grule.Id, ".Block.DefineCmdGenericsIDs", "?"),
		ex(grule.Id, ".Block.DefineCmdFuncIDs", "?"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, "<-", "#"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.Id, ".Rule.PureChoice"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, ",", "#"),
	))

	defineGenericsIDs := ruleDef(".Block.DefineCmdGenericsIDs", grp(nil,
		ex(grule.String, "<", "#"),
		ex(grule.Id, ".Rule.ArgID"),
		grp([]string{"*", "##"},
			ex(grule.String, ",", "#"),
			ex(grule.Id, ".Symbol.Space", "#"),
			ex(grule.Id, ".Rule.ArgID"),
		),
		ex(grule.String, ">", "#"),
	))

	defineFuncIDs := ruleDef(".Block.DefineCmdFuncIDs", grp(nil,
		ex(grule.String, "(", "#"),
		ex(grule.Id, ".Rule.ArgID"),
		grp([]string{"*", "##"},
			ex(grule.String, ",", "#"),
			ex(grule.Id, ".Symbol.Space", "#"),
			ex(grule.Id, ".Rule.ArgID"),
		),
		ex(grule.String, ")", "#"),
	))

	start := ruleDef(".Block.StartCmd", grp(nil,
		ex(grule.String, "+", "#"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, "start", "#"),
		ex(grule.Id, ".Symbol.Space", "+", "#"),
		ex(grule.Id, ".Misc.ChainID"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, ",", "#"),
	))

	use := ruleDef(".Block.UseCmd", grp(nil,
		ex(grule.String, "+", "#"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, "use", "#"),
		ex(grule.Id, ".Symbol.Space", "+", "#"),
		ex(grule.Id, ".Misc.ChainID"),
		ex(grule.Id, ".Block.UseCmdBlockAlias", "?"),
		ex(grule.Id, ".Symbol.Space", "*", "#"),
		ex(grule.String, ",", "#"),
	))

	useBlockAlias := ruleDef(".Block.UseCmdBlockAlias", grp(nil,
		ex(grule.Id, ".Symbol.Space", "+", "#"),
		ex(grule.String, "as", "#"),
		ex(grule.Id, ".Symbol.Space", "+", "#"),
		ex(grule.Id, ".Misc.SingleID"),
	))

	return defineBlock("Block",
		block, cmd, comment, define, defineGenericsIDs, defineFuncIDs,
		start, use, useBlockAlias,
	)
}
