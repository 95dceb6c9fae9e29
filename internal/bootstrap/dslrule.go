package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// ruleBlock returns the bootstrap's Rule block: the productions describing
// a rule body itself (sequences, choices, loops, lookahead, reflection,
// string/char-class/wildcard literals, generics and function invocations).
// Grounded on get_rule_block in the original source.
func ruleBlock() *grule.Block {
	instantPureChoice := ruleDef(".Rule.InstantPureChoice", grp(nil,
		ex(grule.Id, ".Rule.Seq"),
		grp([]string{"*", "##"},
			grp([]string{"##"},
				ex(grule.String, ":"),
				ex(grule.Id, ".Symbol.Space", "#"),
				ex(grule.Id, ".Rule.Seq"),
			),
		),
	))

	pureChoice := ruleDef(".Rule.PureChoice", grp(nil,
		ex(grule.Id, ".Rule.Seq"),
		grp([]string{"*", "##"},
			grp([]string{"##"},
				grp([]string{":"},
					grp([]string{"##"},
						ex(grule.Id, ".Rule.SeqDiv", "+", "#"),
						ex(grule.String, ":"),
						ex(grule.Id, ".Rule.SeqDiv", "+", "#"),
					),
					grp([]string{"##"},
						ex(grule.String, ","),
						ex(grule.Id, ".Symbol.Space", "#"),
					),
				),
				ex(grule.Id, ".Rule.Seq"),
			),
		),
	))

	choice := ruleDef(".Rule.Choice", grp(nil,
		ex(grule.String, "(", "#"),
		ex(grule.Id, ".Rule.PureChoice"),
		ex(grule.String, ")", "#"),
	))

	seqDiv := ruleDef(".Rule.SeqDiv", grp(nil,
		grp([]string{":"},
			grp(nil, ex(grule.Id, ".Symbol.Space", "#")),
			grp(nil, ex(grule.String, "\n", "#")),
		),
	))

	seq := ruleDef(".Rule.Seq", grp(nil,
		ex(grule.Id, ".Rule.SeqElem"),
		grp([]string{"*", "##"},
			grp(nil,
				ex(grule.Id, ".Rule.SeqDiv", "+", "#"),
				ex(grule.Id, ".Rule.SeqElem"),
			),
		),
	))

	seqElem := ruleDef(".Rule.SeqElem", grp(nil,
		ex(grule.Id, ".Rule.Lookahead", "?"),
		grp([]string{"##"},
			grp([]string{":"},
				grp(nil, ex(grule.Id, ".Rule.Choice")),
				grp(nil, ex(grule.Id, ".Rule.Expr")),
			),
		),
		ex(grule.Id, ".Rule.Loop", "?"),
		ex(grule.Id, ".Rule.RandomOrder", "?"),
		ex(grule.Id, ".Rule.ASTReflectionStyle", "?"),
	))

	expr := ruleDef(".Rule.Expr", grp(nil,
		grp([]string{":"},
			grp(nil, ex(grule.Id, ".Rule.ArgID")),
			grp(nil, ex(grule.Id, ".Rule.Generics")),
			grp(nil, ex(grule.Id, ".Rule.Func")),
			grp(nil, ex(grule.Id, ".Rule.ID")),
			grp(nil, ex(grule.Id, ".Rule.Str")),
			grp(nil, ex(grule.Id, ".Rule.CharClass")),
			grp(nil, ex(grule.Id, ".Rule.Wildcard")),
		),
	))

	lookahead := ruleDef(".Rule.Lookahead", grp(nil,
		grp([]string{":"},
			grp(nil, ex(grule.String, "!")),
			grp(nil, ex(grule.String, "&")),
		),
	))

	loop := ruleDef(".Rule.Loop", grp(nil,
		grp([]string{":"},
			grp(nil, ex(grule.String, "?")),
			grp(nil, ex(grule.String, "*")),
			grp(nil, ex(grule.String, "+")),
			grp(nil, ex(grule.Id, ".Rule.LoopRange")),
		),
	))

	// LoopRange covers both of spec.md §6's bracketed Loop forms: the
	// comma form ("{" Num? "," Num? "}", either side optional) and the
	// fixed form ("{" Num "}"). The comma itself is deliberately left
	// unsuppressed (no "#") so the translator can locate the min/max
	// boundary by scanning for it as a terminal, the same separator-scan
	// technique .Rule.PureChoice's ":"/"," alternation relies on; the
	// original bootstrap never needed this because its own translator
	// worked from the raw token stream instead of a reflected tree.
	loopRangeComma := grp(nil,
		ex(grule.String, "{", "#"),
		grp([]string{":"},
			grp(nil, ex(grule.Id, ".Rule.Num", "##")),
			grp([]string{"##"}, ex(grule.String, "")),
		),
		ex(grule.String, ","),
		grp([]string{":"},
			grp(nil, ex(grule.Id, ".Rule.Num", "##")),
			grp([]string{"##"}, ex(grule.String, "")),
		),
		ex(grule.String, "}", "#"),
	)

	loopRangeFixed := grp(nil,
		ex(grule.String, "{", "#"),
		ex(grule.Id, ".Rule.Num", "##"),
		ex(grule.String, "}", "#"),
	)

	loopRange := ruleDef(".Rule.LoopRange", grp([]string{":"}, loopRangeComma, loopRangeFixed))

	// The original source's RandomOrder production references a
	// "RandomOrderRange" production by way of a malformed literal string
	// expr (see randomOrderRange below); per spec.md §9's open question,
	// this is flagged rather than silently patched, and the production
	// actually wired here follows the corrected shape from spec.md §6:
	// "^" ("[" Num? "-" Num? "]")?.
	randomOrder := ruleDef(".Rule.RandomOrder", grp(nil,
		ex(grule.String, "^", "#"),
		ex(grule.Id, ".Rule.RandomOrderRange", "?"),
	))

	// The "-" separator is deliberately left unsuppressed (unlike the
	// brackets), mirroring .Rule.LoopRange's comma: it is the only marker
	// that tells the translator whether a matched Num belongs to the min or
	// the max side when one side is omitted (e.g. "[3-]" vs "[-5]").
	randomOrderRange := ruleDef(".Rule.RandomOrderRange", grp(nil,
		ex(grule.String, "[", "#"),
		ex(grule.Id, ".Rule.Num", "?"),
		ex(grule.String, "-"),
		ex(grule.Id, ".Rule.Num", "?"),
		ex(grule.String, "]", "#"),
	))

	astReflection := ruleDef(".Rule.ASTReflectionStyle", grp(nil,
		grp([]string{":"},
			grp(nil, ex(grule.String, "##")),
			grp(nil,
				ex(grule.String, "#", "#"),
				ex(grule.Id, ".Misc.SingleID", "?", "##"),
			),
		),
	))

	num := ruleDef(".Rule.Num", grp(nil,
		ex(grule.CharClass, "[0-9]", "+"),
	))

	id := ruleDef(".Rule.ID", grp(nil,
		ex(grule.Id, ".Misc.ChainID"),
	))

	argID := ruleDef(".Rule.ArgID", grp(nil,
		ex(grule.String, "$", "#"),
		ex(grule.Id, ".Misc.SingleID", "##"),
	))

	generics := ruleDef(".Rule.Generics", grp(nil,
		ex(grule.Id, ".Misc.ChainID"),
		ex(grule.String, "<", "#"),
		ex(grule.Id, ".Rule.InstantPureChoice"),
		grp([]string{"*", "##"},
			grp([]string{"##"},
				ex(grule.String, ",", "#"),
				ex(grule.Id, ".Symbol.Space", "#"),
				ex(grule.Id, ".Rule.InstantPureChoice"),
			),
		),
		ex(grule.String, ">", "#"),
	))

	funcRule := ruleDef(".Rule.Func", grp(nil,
		ex(grule.Id, ".Misc.ChainID"),
		ex(grule.String, "(", "#"),
		ex(grule.Id, ".Rule.InstantPureChoice"),
		grp([]string{"*", "##"},
			grp([]string{"##"},
				ex(grule.String, ",", "#"),
				ex(grule.Id, ".Symbol.Space", "#"),
				ex(grule.Id, ".Rule.InstantPureChoice"),
			),
		),
		ex(grule.String, ")", "#"),
	))

	escSeq := ruleDef(".Rule.EscSeq", grp(nil,
		ex(grule.String, "\\", "#"),
		grp([]string{"##"},
			grp([]string{":"},
				grp(nil, ex(grule.String, "\\")),
				grp(nil, ex(grule.String, "\"")),
				grp(nil, ex(grule.String, "n")),
				grp(nil, ex(grule.String, "t")),
				grp(nil, ex(grule.String, "z")),
				// Any other character still parses here, so the translator
				// can report it as an unknown escape.
				grp(nil, ex(grule.Wildcard, ".")),
			),
		),
	))

	str := ruleDef(".Rule.Str", grp(nil,
		ex(grule.String, "\"", "#"),
		grp([]string{"*", "##"},
			grp([]string{":"},
				grp(nil, ex(grule.Id, ".Rule.EscSeq")),
				grp(nil,
					grp([]string{"!"},
						grp([]string{":"},
							grp(nil, ex(grule.String, "\\")),
							grp(nil, ex(grule.String, "\"")),
						),
					),
					ex(grule.Wildcard, "."),
				),
			),
		),
		ex(grule.String, "\"", "#"),
	))

	charClass := ruleDef(".Rule.CharClass", grp(nil,
		ex(grule.String, "[", "#"),
		grp([]string{"+", "##"},
			ex(grule.String, "[", "!"),
			ex(grule.String, "]", "!"),
			ex(grule.Id, ".Symbol.LineEnd", "!"),
			grp([]string{"##"},
				grp([]string{":"},
					grp(nil, ex(grule.String, "\\[")),
					grp(nil, ex(grule.String, "\\]")),
					grp(nil, ex(grule.String, "\\\\")),
					grp(nil, ex(grule.Wildcard, ".")),
				),
			),
		),
		ex(grule.String, "]", "#"),
	))

	wildcard := ruleDef(".Rule.Wildcard", grp(nil,
		ex(grule.String, "."),
	))

	return defineBlock("Rule",
		instantPureChoice, pureChoice, choice, seqDiv, seq, seqElem, expr,
		lookahead, loop, loopRange, randomOrder, randomOrderRange,
		astReflection, num, id, argID, generics, funcRule, escSeq, str,
		charClass, wildcard,
	)
}
