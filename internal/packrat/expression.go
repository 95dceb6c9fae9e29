package packrat

import (
	"regexp"
	"strings"

	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

func (rt *Runtime) matchExpression(st *state, e *grule.Expression, pos int) ([]*synt.Tree, int, bool, error) {
	switch e.Kind {
	case grule.String:
		return rt.matchLiteral(st, e.Value, pos)

	case grule.Wildcard:
		if _, ok := st.r.at(pos); !ok {
			return nil, pos, false, nil
		}
		return rt.leaf("wildcard", st, pos, pos+1), pos + 1, true, nil

	case grule.CharClass:
		re, err := rt.classRegexp(e.Value)
		if err != nil {
			return nil, pos, false, err
		}
		ch, ok := st.r.at(pos)
		if !ok || !re.MatchString(string(ch)) {
			return nil, pos, false, nil
		}
		return rt.leaf("char_class", st, pos, pos+1), pos + 1, true, nil

	case grule.Id:
		nodes, next, ok, err := rt.matchRule(st, e.Value, pos)
		return nodes, next, ok, err

	case grule.ArgId:
		return rt.matchArgId(st, e.Value, pos)

	case grule.Generics:
		return rt.matchInvocation(st, e, pos, true)

	case grule.Func:
		return rt.matchInvocation(st, e, pos, false)

	default:
		return nil, pos, false, nil
	}
}

func (rt *Runtime) matchLiteral(st *state, lit string, pos int) ([]*synt.Tree, int, bool, error) {
	runes := []rune(lit)
	for i, want := range runes {
		got, ok := st.r.at(pos + i)
		if !ok || got != want {
			return nil, pos, false, nil
		}
	}
	end := pos + len(runes)
	return rt.leaf("str", st, pos, end), end, true, nil
}

func (rt *Runtime) leaf(kind string, st *state, from, to int) []*synt.Tree {
	return []*synt.Tree{{
		Terminal: true,
		Source: synt.Token{
			RuleID: kind,
			Lexeme: st.r.slice(from, to),
			Offset: from,
			File:   st.file,
		},
	}}
}

func (rt *Runtime) classRegexp(payload string) (*regexp.Regexp, error) {
	if re, ok := rt.classes[payload]; ok {
		return re, nil
	}
	re, err := regexp.Compile("^" + payload)
	if err != nil {
		return nil, err
	}
	rt.classes[payload] = re
	return re, nil
}

func (rt *Runtime) matchArgId(st *state, name string, pos int) ([]*synt.Tree, int, bool, error) {
	b, ok := st.frame[name]
	if !ok {
		return nil, pos, false, nil
	}

	savedFrame := st.frame
	st.frame = b.caller
	nodes, next, matched, err := rt.matchElement(st, b.group, pos)
	st.frame = savedFrame

	return nodes, next, matched, err
}

// matchInvocation handles Generics and Func expressions: JOIN (the sole
// primitive function) matches each argument group in sequence and
// synthesizes a single joined-text terminal; any other callee is resolved
// as a normal rule id, with its generic/function parameters bound to the
// supplied argument groups for the duration of the call.
func (rt *Runtime) matchInvocation(st *state, e *grule.Expression, pos int, isGenerics bool) ([]*synt.Tree, int, bool, error) {
	if !isGenerics && grule.PrimitiveFuncNames[e.Value] {
		return rt.matchJoin(st, e, pos)
	}

	rule, ok := rt.catalog.Lookup(e.Value)
	if !ok {
		return nil, pos, false, nil
	}

	names := rule.Params
	if isGenerics {
		names = rule.Generics
	}

	newFrame := make(frame, len(names))
	caller := st.frame
	for i, name := range names {
		if i >= len(e.Args) {
			break
		}
		newFrame[name] = binding{group: e.Args[i], caller: caller}
	}

	savedFrame := st.frame
	st.frame = newFrame
	nodes, next, matched, err := rt.matchRule(st, e.Value, pos)
	st.frame = savedFrame

	return nodes, next, matched, err
}

func (rt *Runtime) matchJoin(st *state, e *grule.Expression, pos int) ([]*synt.Tree, int, bool, error) {
	var sb strings.Builder
	cur := pos
	for _, arg := range e.Args {
		_, next, ok, err := rt.matchElement(st, arg, cur)
		if err != nil {
			return nil, pos, false, err
		}
		if !ok {
			return nil, pos, false, nil
		}
		sb.WriteString(st.r.slice(cur, next))
		cur = next
	}

	return []*synt.Tree{{
		Terminal: true,
		Source: synt.Token{
			RuleID: "join",
			Lexeme: sb.String(),
			Offset: pos,
			File:   st.file,
		},
	}}, cur, true, nil
}
