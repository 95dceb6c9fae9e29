package packrat

import (
	"fmt"

	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// matchElement matches el at pos, applying its lookahead, loop, and
// reflection qualifiers uniformly whether el is a *grule.Group or a
// *grule.Expression. It returns the fully-reflected node list to splice
// into the parent (possibly empty for NoReflection), the position after
// the match, and whether the match succeeded.
func (rt *Runtime) matchElement(st *state, el grule.Element, pos int) ([]*synt.Tree, int, bool, error) {
	lookahead, loop, reflection := elementQualifiers(el)

	if lookahead != grule.LookaheadNone {
		_, _, matched, err := rt.bareMatch(st, el, pos)
		if err != nil {
			return nil, pos, false, err
		}
		ok := matched
		if lookahead == grule.LookaheadNegative {
			ok = !matched
		}
		return nil, pos, ok, nil
	}

	var allNodes []*synt.Tree
	count := 0
	cur := pos
	for loop.Max == grule.LoopMax || count < loop.Max {
		children, next, matched, err := rt.bareMatch(st, el, cur)
		if err != nil {
			return nil, pos, false, err
		}
		if !matched {
			break
		}
		reflected := applyReflection(reflection, children, defaultName(el))
		allNodes = append(allNodes, reflected...)
		count++
		if next == cur {
			// zero-width match; further repetitions would loop forever.
			cur = next
			break
		}
		cur = next
	}

	if count < loop.Min {
		return nil, pos, false, nil
	}
	return allNodes, cur, true, nil
}

// bareMatch attempts exactly one (unrepeated, unreflected) match of el's
// body at pos, returning el's own children (for a composite element) prior
// to el's reflection qualifier being applied by the caller.
func (rt *Runtime) bareMatch(st *state, el grule.Element, pos int) ([]*synt.Tree, int, bool, error) {
	switch v := el.(type) {
	case *grule.Group:
		return rt.matchGroup(st, v, pos)
	case *grule.Expression:
		return rt.matchExpression(st, v, pos)
	default:
		return nil, pos, false, fmt.Errorf("packrat: unknown element type %T", el)
	}
}

func (rt *Runtime) matchGroup(st *state, g *grule.Group, pos int) ([]*synt.Tree, int, bool, error) {
	switch g.Kind {
	case grule.Choice:
		for _, child := range g.Children {
			nodes, next, ok, err := rt.matchElement(st, child, pos)
			if err != nil {
				return nil, pos, false, err
			}
			if ok {
				return nodes, next, true, nil
			}
		}
		return nil, pos, false, nil

	case grule.RandomOrder:
		return rt.matchRandomOrder(st, g, pos)

	default: // Sequence
		var all []*synt.Tree
		cur := pos
		for _, child := range g.Children {
			nodes, next, ok, err := rt.matchElement(st, child, cur)
			if err != nil {
				return nil, pos, false, err
			}
			if !ok {
				return nil, pos, false, nil
			}
			all = append(all, nodes...)
			cur = next
		}
		return all, cur, true, nil
	}
}

// matchRandomOrder greedily matches g's children in any order, each up to
// its own Occurs bound, repeating passes over the remaining children until
// a pass makes no progress. It succeeds if every child reached at least its
// Occurs.Min count.
func (rt *Runtime) matchRandomOrder(st *state, g *grule.Group, pos int) ([]*synt.Tree, int, bool, error) {
	counts := make([]int, len(g.Children))
	var all []*synt.Tree
	cur := pos

	for {
		progressed := false
		for i, child := range g.Children {
			occurs := elementOccurs(child)
			if occurs.Max != grule.LoopMax && counts[i] >= occurs.Max {
				continue
			}
			nodes, next, ok, err := rt.matchElement(st, child, cur)
			if err != nil {
				return nil, pos, false, err
			}
			if !ok {
				continue
			}
			all = append(all, nodes...)
			counts[i]++
			cur = next
			progressed = true
		}
		if !progressed {
			break
		}
	}

	for i, child := range g.Children {
		occurs := elementOccurs(child)
		if counts[i] < occurs.Min {
			return nil, pos, false, nil
		}
	}

	return all, cur, true, nil
}
