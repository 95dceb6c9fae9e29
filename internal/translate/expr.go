package translate

import (
	"strings"

	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// lowerExpr lowers a .Rule.Expr node by dispatching on its sole inner node
// kind, per spec.md §4.4's "Expression lowering."
func lowerExpr(c *lctx, node *synt.Tree) grule.Element {
	kids := node.NamedDescendants()
	if len(kids) != 1 {
		c.st.report(diag.KindInternalError, node, "expression node has %d children, want 1", len(kids))
		return grule.NewExpression(node.Pos(), grule.String, "", grule.Reflection(""))
	}
	inner := kids[0]

	switch inner.Name {
	case ".Rule.ArgID":
		return lowerArgID(inner)
	case ".Rule.Generics":
		return lowerInvocation(c, inner, true)
	case ".Rule.Func":
		return lowerInvocation(c, inner, false)
	case ".Rule.ID":
		return lowerID(c, inner)
	case ".Rule.Str":
		return lowerStr(c, inner)
	case ".Rule.CharClass":
		// The bootstrap's own "[" / "]" delimiters are suppressed (so they
		// don't pollute the tree), but the stored payload must include them
		// verbatim: it's fed straight into regexp.Compile("^"+payload) by
		// the packrat engine, which needs valid bracket-class syntax.
		return grule.NewExpression(inner.Pos(), grule.CharClass, "["+inner.Text()+"]", grule.Reflection(""))
	case ".Rule.Wildcard":
		return grule.NewExpression(inner.Pos(), grule.Wildcard, ".", grule.Reflection(""))
	default:
		c.st.report(diag.KindInternalError, node, "unknown expression kind %q", inner.Name)
		return grule.NewExpression(node.Pos(), grule.String, "", grule.Reflection(""))
	}
}

// lowerArgID lowers a .Rule.ArgID node ("$name") into an ArgId expression.
// Resolution against the enclosing rule's parameter list happens at
// execution time (spec.md §4.4), not here.
func lowerArgID(node *synt.Tree) *grule.Expression {
	return grule.NewExpression(node.Pos(), grule.ArgId, node.Text(), grule.Reflection(""))
}

// lowerID lowers a .Rule.ID node (wrapping a .Misc.ChainID) into an Id
// expression, resolving the chain per spec.md §4.5 and recording the
// resolved id in the shared "appeared" map.
func lowerID(c *lctx, node *synt.Tree) *grule.Expression {
	chain := splitChain(node.Text())
	id, ok := c.resolveChain(chain, node)
	if !ok {
		return grule.NewExpression(node.Pos(), grule.Id, node.Text(), grule.Reflection(""))
	}
	c.st.recordAppeared(id, node)
	return grule.NewExpression(node.Pos(), grule.Id, id, grule.Reflection(""))
}

// lowerInvocation lowers a .Rule.Generics or .Rule.Func node: a callee
// chain-id followed by one or more comma-separated InstantPureChoice
// arguments, each lowered as a full group. A Func whose unqualified chain
// is a primitive function name (the closed {JOIN} set) keeps its id
// literal instead of resolving it as a normal rule reference, and defaults
// to NoReflection rather than Reflection("").
func lowerInvocation(c *lctx, node *synt.Tree, isGenerics bool) *grule.Expression {
	kids := node.NamedDescendants()
	if len(kids) == 0 {
		c.st.report(diag.KindInternalError, node, "invocation has no callee id")
		return grule.NewExpression(node.Pos(), grule.String, "", grule.Reflection(""))
	}
	chainText := kids[0].Text()
	parts := splitChain(chainText)

	var args []*grule.Group
	for _, k := range kids[1:] {
		if k.Name == ".Rule.InstantPureChoice" {
			args = append(args, asGroup(lowerChoiceLike(c, k)))
		}
	}

	kind := grule.Func
	if isGenerics {
		kind = grule.Generics
	}

	if !isGenerics && len(parts) == 1 && grule.PrimitiveFuncNames[parts[0]] {
		e := grule.NewExpression(node.Pos(), kind, parts[0], grule.NoReflection())
		e.Args = args
		return e
	}

	id, ok := c.resolveChain(parts, kids[0])
	if !ok {
		id = chainText
	} else {
		c.st.recordAppeared(id, kids[0])
	}
	e := grule.NewExpression(node.Pos(), kind, id, grule.Reflection(""))
	e.Args = args
	return e
}

// asGroup wraps a lowered element so a bare Sequence (the single-alternative
// collapse case of lowerChoiceLike) and an already-built Group both present
// the *grule.Group shape Expression.Args expects.
func asGroup(el grule.Element) *grule.Group {
	if g, ok := el.(*grule.Group); ok {
		return g
	}
	g := grule.NewGroup(el.Pos(), grule.Sequence, grule.Reflection(""))
	g.Children = []grule.Element{el}
	return g
}

// lowerStr decodes a .Rule.Str node's escape sequences into a String
// expression's literal value, per spec.md §4.4.
func lowerStr(c *lctx, node *synt.Tree) *grule.Expression {
	var sb strings.Builder
	for _, k := range node.NamedDescendants() {
		if k.Name == ".Rule.EscSeq" {
			decoded, ok := decodeEscape(k.Text())
			if !ok {
				c.st.report(diag.KindUnknownEscapeSequenceCharacter, k, "unknown escape sequence %q", k.Text())
				continue
			}
			sb.WriteString(decoded)
			continue
		}
		sb.WriteString(k.Text())
	}
	return grule.NewExpression(node.Pos(), grule.String, sb.String(), grule.Reflection(""))
}

func decodeEscape(seq string) (string, bool) {
	switch seq {
	case "\\":
		return "\\", true
	case "\"":
		return "\"", true
	case "n":
		return "\n", true
	case "t":
		return "\t", true
	case "z":
		return "\x00", true
	default:
		return "", false
	}
}
