package packrat

import (
	"testing"

	"github.com/oakmoth/gramble/internal/grule"
	"github.com/stretchr/testify/assert"
)

func seq(children ...grule.Element) *grule.Group {
	g := grule.NewGroup(grule.Position{}, grule.Sequence, grule.Expansion())
	g.Children = children
	return g
}

func choice(children ...grule.Element) *grule.Group {
	g := grule.NewGroup(grule.Position{}, grule.Choice, grule.NoReflection())
	g.Children = children
	return g
}

func str(lit string) *grule.Expression {
	return grule.NewExpression(grule.Position{}, grule.String, lit, grule.Reflection(""))
}

func id(name string) *grule.Expression {
	return grule.NewExpression(grule.Position{}, grule.Id, name, grule.Reflection(""))
}

func Test_Runtime_MatchesLiteralSequence(t *testing.T) {
	cat := grule.NewCatalog()
	cat.Rules["main"] = grule.Rule{Name: "main", Root: seq(str("foo"), str("bar"))}
	cat.Start = "main"

	rt := New(cat)
	tree, err := rt.Parse("main", "foobar", "t.gram")
	assert.NoError(t, err)
	assert.NotNil(t, tree)
}

func Test_Runtime_ChoicePicksFirstMatch(t *testing.T) {
	cat := grule.NewCatalog()
	cat.Rules["main"] = grule.Rule{Name: "main", Root: choice(str("a"), str("b"))}
	cat.Start = "main"

	rt := New(cat)
	_, err := rt.Parse("main", "b", "t.gram")
	assert.NoError(t, err)
}

func Test_Runtime_LoopMatchesRepeated(t *testing.T) {
	cat := grule.NewCatalog()
	digit := grule.NewExpression(grule.Position{}, grule.CharClass, "[0-9]", grule.NoReflection())
	digit.Loop = grule.LoopCount{Min: 1, Max: grule.LoopMax}
	cat.Rules["main"] = grule.Rule{Name: "main", Root: seq(digit)}
	cat.Start = "main"

	rt := New(cat)
	_, err := rt.Parse("main", "12345", "t.gram")
	assert.NoError(t, err)

	_, err = rt.Parse("main", "", "t.gram")
	assert.Error(t, err)
}

func Test_Runtime_IdRecursesIntoAnotherRule(t *testing.T) {
	cat := grule.NewCatalog()
	cat.Rules["main"] = grule.Rule{Name: "main", Root: seq(id("greeting"))}
	cat.Rules["greeting"] = grule.Rule{Name: "greeting", Root: seq(str("hi"))}
	cat.Start = "main"

	rt := New(cat)
	tree, err := rt.Parse("main", "hi", "t.gram")
	assert.NoError(t, err)
	assert.NotNil(t, tree)
}

func Test_Runtime_JoinConcatenatesArgumentText(t *testing.T) {
	cat := grule.NewCatalog()
	joinExpr := grule.NewExpression(grule.Position{}, grule.Func, "JOIN", grule.Reflection(""))
	joinExpr.Args = []*grule.Group{seq(str("a")), seq(str("b"))}
	cat.Rules["main"] = grule.Rule{Name: "main", Root: seq(joinExpr)}
	cat.Start = "main"

	rt := New(cat)
	tree, err := rt.Parse("main", "ab", "t.gram")
	assert.NoError(t, err)
	assert.Equal(t, "ab", tree.Text())
}

func Test_Runtime_FuncBindsArgIdInCallee(t *testing.T) {
	cat := grule.NewCatalog()
	argRef := grule.NewExpression(grule.Position{}, grule.ArgId, "X", grule.Reflection(""))
	cat.Rules["wrapper"] = grule.Rule{Name: "wrapper", Params: []string{"X"}, Root: seq(argRef)}

	call := grule.NewExpression(grule.Position{}, grule.Func, "wrapper", grule.Reflection(""))
	call.Args = []*grule.Group{seq(str("hello"))}
	cat.Rules["main"] = grule.Rule{Name: "main", Root: seq(call)}
	cat.Start = "main"

	rt := New(cat)
	tree, err := rt.Parse("main", "hello", "t.gram")
	assert.NoError(t, err)
	assert.Equal(t, "hello", tree.Text())
}

func Test_Runtime_NegativeLookaheadBlocksMatch(t *testing.T) {
	cat := grule.NewCatalog()
	notA := str("a")
	notA.Lookahead = grule.LookaheadNegative
	cat.Rules["main"] = grule.Rule{Name: "main", Root: seq(notA, str("b"))}
	cat.Start = "main"

	rt := New(cat)
	_, err := rt.Parse("main", "b", "t.gram")
	assert.NoError(t, err)

	_, err = rt.Parse("main", "ab", "t.gram")
	assert.Error(t, err)
}
