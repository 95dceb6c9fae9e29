package synt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tree_Text_ConcatenatesTerminals(t *testing.T) {
	tree := &Tree{
		Name: ".Rule.Seq",
		Children: []*Tree{
			{Terminal: true, Name: "str", Source: Token{Lexeme: "a"}},
			{Terminal: true, Name: "str", Source: Token{Lexeme: "b"}},
		},
	}

	assert.Equal(t, "ab", tree.Text())
}

func Test_Tree_String_IsStable(t *testing.T) {
	tree := &Tree{
		Name: ".Block.Block",
		Children: []*Tree{
			{Terminal: true, Name: "id", Source: Token{Lexeme: "Main"}},
		},
	}

	assert.Contains(t, tree.String(), "Main")
	assert.Contains(t, tree.String(), ".Block.Block")
}

func Test_Tree_NamedChildren(t *testing.T) {
	tree := &Tree{
		Children: []*Tree{
			{Name: ".Block.DefineCmd"},
			{Name: ".Block.UseCmd"},
			{Name: ".Block.DefineCmd"},
		},
	}

	defines := tree.NamedChildren(".Block.DefineCmd")
	assert.Len(t, defines, 2)
}

func Test_Tree_NamedDescendants_SkipsAnonymousWrappers(t *testing.T) {
	tree := &Tree{
		Name: ".Block.Block",
		Children: []*Tree{
			{
				Name: "",
				Children: []*Tree{
					{Name: ".Misc.SingleID"},
					{
						Name: "",
						Children: []*Tree{
							{Name: ".Block.Cmd"},
						},
					},
				},
			},
		},
	}

	found := tree.NamedDescendants()
	assert.Len(t, found, 2)
	assert.Equal(t, ".Misc.SingleID", found[0].Name)
	assert.Equal(t, ".Block.Cmd", found[1].Name)
}
