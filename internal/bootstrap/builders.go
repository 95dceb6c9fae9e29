// Package bootstrap is the hand-authored rule catalog that describes the
// grammar DSL itself (spec.md §4.1), expressed directly in the
// internal/grule data model. It is this module's only "generated-like"
// region per spec.md §9: dense builder-function calls stand in for the
// declarative rule!/choice!/expr!/start_cmd! macros the original Rust
// fcpeg source used for the same purpose (original_source/impl/rust/fcpeg/
// src/block.rs), kept isolated from the dynamic translation logic in
// internal/translate.
package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// grp builds a Group, defaulting to Sequence kind and empty-name reflection.
// opts may include "&"/"!" (lookahead), "?"/"*"/"+" (loop shorthand), "#"
// (NoReflection), "##" (Expansion), or ":" (switch kind to Choice) — mirrors
// the original choice! macro's option list, which despite the name builds
// either a Sequence or a Choice group depending on whether ":" is present.
func grp(opts []string, children ...grule.Element) *grule.Group {
	g := grule.NewGroup(grule.Position{}, grule.Sequence, grule.Reflection(""))
	g.Children = children
	applyOpts(opts, &g.Lookahead, &g.Loop, &g.Reflection, &g.Kind)
	return g
}

// ex builds an Expression. Its default reflection name is the referenced
// rule id for an Id expression (the "leaf_name" convention from expr!) and
// empty otherwise; opts are interpreted the same way as for grp, minus ":"
// (meaningless for a leaf).
func ex(kind grule.ExpressionKind, value string, opts ...string) *grule.Expression {
	name := ""
	if kind == grule.Id {
		name = value
	}
	e := grule.NewExpression(grule.Position{}, kind, value, grule.Reflection(name))
	var ignoredKind grule.GroupKind
	applyOpts(opts, &e.Lookahead, &e.Loop, &e.Reflection, &ignoredKind)
	return e
}

func applyOpts(opts []string, lookahead *grule.Lookahead, loop *grule.LoopCount, reflection *grule.ReflectionStyle, kind *grule.GroupKind) {
	for _, opt := range opts {
		switch opt {
		case "&", "!":
			*lookahead = grule.LookaheadFromSymbol(opt)
		case "?", "*", "+":
			if lc, ok := grule.LoopFromSymbol(opt); ok {
				*loop = lc
			}
		case "#":
			*reflection = grule.NoReflection()
		case "##":
			*reflection = grule.Expansion()
		case ":":
			*kind = grule.Choice
		}
	}
}

// ruleDef builds a Rule whose root is a Choice group wrapping a single
// Sequence alternative, Expansion-reflected — the shape the original rule!
// macro always produced, regardless of how many elements the rule's own
// body has.
func ruleDef(qualifiedName string, body *grule.Group) grule.Rule {
	root := grule.NewGroup(grule.Position{}, grule.Choice, grule.Expansion())
	root.Children = []grule.Element{body}
	return grule.Rule{
		Name:      qualifiedName,
		LocalName: localName(qualifiedName),
		Root:      root,
	}
}

// localName returns the final "."-separated component of a qualified rule
// name, e.g. ".Syntax.FCPEG" -> "FCPEG".
func localName(qualifiedName string) string {
	last := 0
	for i := 0; i < len(qualifiedName); i++ {
		if qualifiedName[i] == '.' {
			last = i + 1
		}
	}
	return qualifiedName[last:]
}

// defineBlock builds a *grule.Block containing one DefineCommand per rule,
// keyed by local rule name. Panics if two rules share a local name: the
// bootstrap catalog is a fixed, hand-checked constant, so a collision here
// is a programming error in this package, not a runtime grammar error.
func defineBlock(name string, rules ...grule.Rule) *grule.Block {
	b := grule.NewBlock(name)
	for _, r := range rules {
		cmd := grule.DefineCommand{Rule: r}
		if !b.AddDefine(cmd) {
			panic("bootstrap: duplicate rule name " + r.LocalName + " in block " + name)
		}
	}
	return b
}
