package translate

import (
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// lowerStart lowers a "+ start <chain>," command (spec.md §4.3). The
// command's containing block must literally be named Main; the chain
// itself names the rule to start, either within the current file (2
// components: block, rule) or in an explicit other file (3 components:
// file-alias, block, rule).
func lowerStart(c *lctx, blockName string, node *synt.Tree) (grule.StartCommand, bool) {
	if blockName != grule.MainBlockName {
		c.st.report(diag.KindStartCommandOutsideMainBlock, node,
			"start command must appear in the %q block, not %q", grule.MainBlockName, blockName)
		return grule.StartCommand{}, false
	}

	chainNode := soleChainID(c.st, node)
	if chainNode == nil {
		return grule.StartCommand{}, false
	}
	parts := splitChain(chainNode.Text())

	var fileAlias, block, rule string
	switch len(parts) {
	case 2:
		fileAlias, block, rule = c.st.fileAlias, parts[0], parts[1]
	case 3:
		fileAlias, block, rule = parts[0], parts[1], parts[2]
	default:
		c.st.report(diag.KindInvalidID, node, "start chain must have 2 or 3 components, got %d (%q)", len(parts), chainNode.Text())
		return grule.StartCommand{}, false
	}

	return grule.StartCommand{Position: node.Pos(), FileAlias: fileAlias, Block: block, Rule: rule}, true
}

// lowerUse lowers a "+ use <chain> [as <id>]," command (spec.md §4.3),
// populating the current block's alias table and returning the UseCommand
// for the block to record in its command list. A malformed chain reports a
// diagnostic but does not abort the block.
func lowerUse(c *lctx, node *synt.Tree) (grule.UseCommand, bool) {
	kids := node.NamedDescendants()
	if len(kids) == 0 {
		c.st.report(diag.KindInternalError, node, "use command has no chain id")
		return grule.UseCommand{}, false
	}
	chainNode := kids[0]
	parts := splitChain(chainNode.Text())

	var fileAlias, block string
	switch len(parts) {
	case 1:
		fileAlias, block = c.st.fileAlias, parts[0]
	case 2:
		fileAlias, block = parts[0], parts[1]
	default:
		c.st.report(diag.KindInvalidID, node, "use chain must have 1 or 2 components, got %d (%q)", len(parts), chainNode.Text())
		return grule.UseCommand{}, false
	}

	alias := block
	for _, k := range kids[1:] {
		if k.Name == ".Block.UseCmdBlockAlias" {
			alias = k.Text()
		}
	}

	c.aliases.Set(alias, fileAlias, block)
	return grule.UseCommand{Position: node.Pos(), FileAlias: fileAlias, Block: block, BlockAlias: alias}, true
}

// soleChainID extracts a command node's single .Misc.ChainID descendant,
// reporting an internal error and returning nil if it isn't there.
func soleChainID(st *state, node *synt.Tree) *synt.Tree {
	kids := node.NamedDescendants()
	if len(kids) == 0 {
		st.report(diag.KindInternalError, node, "command node has no chain id")
		return nil
	}
	return kids[0]
}
