package translate

import (
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// Translate lowers tree (the result of parsing one grammar-source file
// against the bootstrap catalog's .Syntax.FCPEG rule) into a Result,
// reporting diagnostics to sink and recording every referenced rule id into
// appeared (shared across every file of the same compile run).
func Translate(tree *synt.Tree, fileAlias, filePath string, appeared map[string]grule.Position, sink diag.Sink) Result {
	st := &state{fileAlias: fileAlias, filePath: filePath, sink: sink, appeared: appeared}

	blocks := make(grule.BlockMap)
	var startID string
	seenMain := false

	for _, blockNode := range tree.NamedDescendants() {
		kids := blockNode.NamedDescendants()
		if len(kids) == 0 {
			st.report(diag.KindInternalError, blockNode, "block node has no header")
			continue
		}
		name := kids[0].Text()
		if !isPascalCase(name) {
			st.report(diag.KindNamingRuleViolation, kids[0], "block %q is not PascalCase", name)
		}
		if _, exists := blocks[name]; exists {
			st.report(diag.KindDuplicatedBlockName, blockNode, "block %q already defined in this file", name)
			return Result{}
		}
		if name == grule.MainBlockName {
			seenMain = true
		}

		b := grule.NewBlock(name)
		id, ok := processBlock(st, b, name, kids[1:])
		if ok && id != "" {
			startID = id
		}
		blocks[name] = b
	}

	if !seenMain {
		if fileAlias == "" {
			st.report(diag.KindMainBlockNotDefined, tree, "no block named %q in top-level file", grule.MainBlockName)
		}
		blocks[grule.MainBlockName] = grule.NewBlock(grule.MainBlockName)
	}

	return Result{Blocks: blocks, StartID: startID}
}

// processBlock lowers one block's command nodes into b, returning the
// fully-qualified start-rule id this block's Start command (if any) named
// when fileAlias is empty (the top-level file).
func processBlock(st *state, b *grule.Block, blockName string, cmdNodes []*synt.Tree) (string, bool) {
	aliases := grule.NewAliasTable()
	c := &lctx{st: st, aliases: aliases, blockName: blockName}

	var startID string
	var haveStart bool

	for _, cmdNode := range cmdNodes {
		inner := cmdNode.NamedDescendants()
		if len(inner) != 1 {
			st.report(diag.KindInternalError, cmdNode, "command node has %d children, want 1", len(inner))
			continue
		}
		body := inner[0]

		switch body.Name {
		case ".Block.CommentCmd":
			b.AddCommand(grule.CommentCommand{Position: body.Pos(), Text: body.Text()})

		case ".Block.DefineCmd":
			if cmd, ok := lowerDefine(c, body); ok {
				if !b.AddDefine(cmd) {
					st.report(diag.KindDuplicatedRuleName, body, "rule %q already defined in block %q", cmd.Rule.LocalName, blockName)
				}
			}

		case ".Block.StartCmd":
			cmd, ok := lowerStart(c, blockName, body)
			if !ok {
				continue
			}
			b.AddCommand(cmd)
			if st.fileAlias != "" {
				continue
			}
			if haveStart {
				st.report(diag.KindDuplicatedStartCommand, body, "a start command was already recorded for this file")
				continue
			}
			haveStart = true
			startID = grule.QualifiedName(cmd.FileAlias, cmd.Block, cmd.Rule)
			st.recordAppeared(startID, body)

		case ".Block.UseCmd":
			if cmd, ok := lowerUse(c, body); ok {
				b.AddCommand(cmd)
			}

		default:
			st.report(diag.KindInternalError, body, "unknown command node %q", body.Name)
		}
	}

	return startID, haveStart
}
