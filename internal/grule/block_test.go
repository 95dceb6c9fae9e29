package grule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Block_AddDefine_DuplicateRejected(t *testing.T) {
	b := NewBlock("Main")

	ok := b.AddDefine(DefineCommand{Rule: Rule{LocalName: "X", Name: ".Main.X"}})
	assert.True(t, ok)

	ok = b.AddDefine(DefineCommand{Rule: Rule{LocalName: "X", Name: ".Main.X"}})
	assert.False(t, ok, "duplicate rule name in the same block must be rejected")

	assert.Len(t, b.Commands, 1)
}

func Test_QualifiedName(t *testing.T) {
	testCases := []struct {
		name      string
		fileAlias string
		block     string
		rule      string
		want      string
	}{
		{name: "top level file renders leading dot", fileAlias: "", block: "Syntax", rule: "FCPEG", want: ".Syntax.FCPEG"},
		{name: "aliased file", fileAlias: "f2", block: "Main", rule: "R", want: "f2.Main.R"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, QualifiedName(tc.fileAlias, tc.block, tc.rule))
		})
	}
}

func Test_AliasTable(t *testing.T) {
	tbl := NewAliasTable()
	tbl.Set("O", "f2", "Other")

	resolved, ok := tbl.Resolve("O")
	assert.True(t, ok)
	assert.Equal(t, "f2.Other", resolved)

	_, ok = tbl.Resolve("missing")
	assert.False(t, ok)
}
