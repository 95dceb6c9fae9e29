// Package synt holds the concrete syntax tree and token types produced by
// the syntax-tree adapter (spec.md §4.2) and consumed by the grammar-source
// translator (spec.md §4.3). Shape grounded on
// internal/ictiobus/types/tree.go and types/token.go in the teacher repo.
package synt

import (
	"fmt"
	"strings"

	"github.com/oakmoth/gramble/internal/grule"
)

const (
	treeLevelEmpty      = "        "
	treeLevelOngoing    = "  |     "
	treeLevelPrefix     = "  |%s: "
	treeLevelPrefixLast = `  \%s: `
)

// Tree is a concrete syntax tree node: either a terminal (a matched leaf,
// carrying the source Token) or a non-terminal (an inner node named after
// the rule that produced it, carrying children).
type Tree struct {
	// Terminal is whether this node corresponds to a matched terminal
	// expression (String, CharClass, Wildcard) or a JOIN call's joined text.
	Terminal bool

	// Name is the node's reflection name: for non-terminals, the rule's
	// fully-qualified name, an explicit "#name", or "" for an anonymous
	// wrapper; terminals carry no name of their own.
	Name string

	// Source is the matched token; only meaningful when Terminal is true.
	Source Token

	Children []*Tree
}

// String returns a prettified, indented rendering of the tree, in the same
// style as the teacher's ParseTree.String().
func (t *Tree) String() string {
	return t.leveledStr("", "")
}

func (t *Tree) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if t.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %s %q)", t.Name, t.Source.Lexeme))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", t.Name))
	}

	for i, child := range t.Children {
		sb.WriteRune('\n')
		var nextFirst, nextCont string
		if i+1 < len(t.Children) {
			nextFirst = contPrefix + fmt.Sprintf(treeLevelPrefix, "")
			nextCont = contPrefix + treeLevelOngoing
		} else {
			nextFirst = contPrefix + fmt.Sprintf(treeLevelPrefixLast, "")
			nextCont = contPrefix + treeLevelEmpty
		}
		sb.WriteString(child.leveledStr(nextFirst, nextCont))
	}

	return sb.String()
}

// NamedChildren filters t's direct children down to those with Name ==
// name.
func (t *Tree) NamedChildren(name string) []*Tree {
	var out []*Tree
	for _, c := range t.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// NamedDescendants walks t's subtree and collects, along each branch, the
// first node encountered carrying a non-empty Name or Terminal flag —
// skipping over the anonymous sequence-wrapper nodes that a
// default (empty-name) reflection style produces. This is how the
// translator recovers the flat, meaningfully-named child list a grammar
// production cares about from the CST's actual (more deeply nested)
// reflection-driven shape.
func (t *Tree) NamedDescendants() []*Tree {
	var out []*Tree
	for _, c := range t.Children {
		if c.Name != "" || c.Terminal {
			out = append(out, c)
			continue
		}
		out = append(out, c.NamedDescendants()...)
	}
	return out
}

// Pos returns the grule.Position of t's leftmost terminal descendant, or
// the empty Position if t has none (e.g. an Expansion-spliced node with no
// matched content).
func (t *Tree) Pos() grule.Position {
	if t.Terminal {
		return grule.Position{File: t.Source.File, Offset: t.Source.Offset}
	}
	for _, c := range t.Children {
		if p := c.Pos(); !p.IsEmpty() {
			return p
		}
	}
	return grule.Position{}
}

// Text returns the concatenated lexemes of every terminal descendant of t,
// in tree order; for a terminal node it is simply the matched lexeme. Text
// that a NoReflection element matched is not in the tree, so it is not
// part of the result.
func (t *Tree) Text() string {
	if t.Terminal {
		return t.Source.Lexeme
	}
	var sb strings.Builder
	for _, c := range t.Children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}
