package translate

import (
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// lowerDefine lowers a "<name> [<G1,…>] [(F1,…)] <- <pure-choice>," command
// (spec.md §4.3) into a grule.DefineCommand whose Rule is ready to be
// registered with the enclosing block.
func lowerDefine(c *lctx, node *synt.Tree) (grule.DefineCommand, bool) {
	kids := node.NamedDescendants()
	if len(kids) == 0 {
		c.st.report(diag.KindInternalError, node, "define command has no name")
		return grule.DefineCommand{}, false
	}

	nameNode := kids[0]
	name := nameNode.Text()
	if !isPascalCase(name) {
		c.st.report(diag.KindNamingRuleViolation, nameNode, "rule %q is not PascalCase", name)
	}

	var generics, params []string
	var pureChoice *synt.Tree

	for _, k := range kids[1:] {
		switch k.Name {
		case ".Block.DefineCmdGenericsIDs":
			generics = collectArgIDs(c, k, "generic")
		case ".Block.DefineCmdFuncIDs":
			params = collectArgIDs(c, k, "function")
		case ".Rule.PureChoice":
			pureChoice = k
		}
	}

	if pureChoice == nil {
		c.st.report(diag.KindInternalError, node, "define command %q has no rule body", name)
		return grule.DefineCommand{}, false
	}

	body := lowerChoiceLike(c, pureChoice)
	root := grule.NewGroup(node.Pos(), grule.Choice, grule.Expansion())
	root.Children = []grule.Element{body}

	rule := grule.Rule{
		Position:  node.Pos(),
		Name:      grule.QualifiedName(c.st.fileAlias, c.blockName, name),
		LocalName: name,
		Generics:  generics,
		Params:    params,
		Root:      root,
	}
	return grule.DefineCommand{Position: node.Pos(), Rule: rule}, true
}

// collectArgIDs collects a GenericsIDs or FuncIDs node's $-prefixed
// parameter names, warning (but still appending) on duplicates within the
// list per spec.md §4.3.
func collectArgIDs(c *lctx, node *synt.Tree, kindLabel string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, k := range node.NamedDescendants() {
		name := k.Text()
		if seen[name] {
			c.st.report(diag.KindDuplicatedArgumentID, k, "duplicate %s parameter id %q", kindLabel, name)
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
