package packrat

import (
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

func elementQualifiers(el grule.Element) (grule.Lookahead, grule.LoopCount, grule.ReflectionStyle) {
	switch v := el.(type) {
	case *grule.Group:
		return v.Lookahead, v.Loop, v.Reflection
	case *grule.Expression:
		return v.Lookahead, v.Loop, v.Reflection
	default:
		return grule.LookaheadNone, grule.Once(), grule.Reflection("")
	}
}

func elementOccurs(el grule.Element) grule.LoopCount {
	switch v := el.(type) {
	case *grule.Group:
		return v.Occurs
	case *grule.Expression:
		return v.Occurs
	default:
		return grule.Once()
	}
}

// defaultName returns the name an element's reflection falls back to when
// its explicit name is empty: the referenced rule id for an Id expression
// (matching the original fcpeg macros' "leaf_name" convention), else "".
func defaultName(el grule.Element) string {
	if expr, ok := el.(*grule.Expression); ok && expr.Kind == grule.Id {
		return expr.Value
	}
	return ""
}

// applyReflection turns a composite element's raw child-node list (or, for
// a terminal match, the supplied terminal node) into the node list that
// should be spliced into its parent, per the element's reflection style:
// NoReflection discards them, Expansion splices them unwrapped, and a named
// reflection wraps them under one new node.
func applyReflection(rs grule.ReflectionStyle, children []*synt.Tree, fallbackName string) []*synt.Tree {
	switch rs.Kind {
	case grule.ReflectionKindNone:
		return nil
	case grule.ReflectionKindExpansion:
		return children
	default:
		name := rs.Name
		if name == "" {
			name = fallbackName
		}
		return []*synt.Tree{{Name: name, Children: children}}
	}
}
