package packrat

import (
	"fmt"
	"regexp"

	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// Runtime matches a grule.Catalog's rule graph against source text.
type Runtime struct {
	catalog *grule.Catalog
	classes map[string]*regexp.Regexp
}

// New returns a Runtime bound to catalog.
func New(catalog *grule.Catalog) *Runtime {
	return &Runtime{catalog: catalog, classes: make(map[string]*regexp.Regexp)}
}

// binding is what an ArgId name resolves to: the argument Group supplied at
// a Generics/Func call site, plus the frame that was active at that call
// site (so that $name references nested inside the argument group itself
// resolve against the caller's bindings, not the callee's).
type binding struct {
	group  *grule.Group
	caller frame
}

// frame binds ArgId names (generic and function parameters share one
// namespace at match time, since both are just "$name" substitutions) to
// their call-site binding.
type frame map[string]binding

// state threads per-attempt matching context: the source reader, a memo
// table for frame-free rule invocations, and the currently active argument
// frame (nil outside of any Generics/Func expansion).
type state struct {
	r     *reader
	file  string
	memo  map[memoKey]memoEntry
	frame frame
}

type memoKey struct {
	ruleID string
	pos    int
}

type memoEntry struct {
	ok    bool
	pos   int
	nodes []*synt.Tree
}

// Parse runs the rule named startID against text, returning the resulting
// concrete syntax tree. file is recorded into diagnostics-facing positions.
func (rt *Runtime) Parse(startID, text, file string) (*synt.Tree, error) {
	st := &state{r: newReader(text), file: file, memo: make(map[memoKey]memoEntry)}

	nodes, pos, ok, err := rt.matchRule(st, startID, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("packrat: %s did not match at offset 0", startID)
	}
	if pos != st.r.len() {
		return nil, fmt.Errorf("packrat: %s matched only %d of %d runes", startID, pos, st.r.len())
	}

	if len(nodes) == 1 {
		return nodes[0], nil
	}
	// Expansion-reflected start rule: wrap loose nodes under a synthetic
	// root so callers always get one tree.
	return &synt.Tree{Name: startID, Children: nodes}, nil
}

// matchRule invokes the rule named id at pos, memoizing when there is no
// active argument frame (frame-bound invocations are call-site specific and
// are not safe to memoize under the bare rule id).
func (rt *Runtime) matchRule(st *state, id string, pos int) ([]*synt.Tree, int, bool, error) {
	useMemo := st.frame == nil
	if useMemo {
		if e, ok := st.memo[memoKey{id, pos}]; ok {
			return e.nodes, e.pos, e.ok, nil
		}
	}

	rule, ok := rt.catalog.Lookup(id)
	if !ok {
		return nil, pos, false, fmt.Errorf("packrat: unknown rule id %q", id)
	}

	nodes, newPos, matched, err := rt.matchElement(st, rule.Root, pos)
	if useMemo {
		st.memo[memoKey{id, pos}] = memoEntry{ok: matched, pos: newPos, nodes: nodes}
	}
	return nodes, newPos, matched, err
}
