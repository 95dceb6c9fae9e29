package assemble_test

import (
	"testing"

	"github.com/oakmoth/gramble/internal/assemble"
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleBlock(fileAlias, blockName, ruleName string) grule.BlockMap {
	b := grule.NewBlock(blockName)
	r := grule.Rule{Name: grule.QualifiedName(fileAlias, blockName, ruleName), LocalName: ruleName}
	b.Rules[ruleName] = r
	return grule.BlockMap{blockName: b}
}

func TestAssemble_HappyPath(t *testing.T) {
	files := []assemble.FileResult{
		{FileAlias: "", Blocks: ruleBlock("", "Main", "X"), StartID: ".Main.X"},
	}
	appeared := map[string]grule.Position{".Main.X": {}}
	sink := diag.NewCollector()

	cat := assemble.Assemble(files, appeared, sink)

	assert.Empty(t, sink.Errors())
	assert.Equal(t, ".Main.X", cat.Start)
	_, ok := cat.Lookup(".Main.X")
	assert.True(t, ok)
}

// No dangling ids (spec.md §8): an id recorded as appeared but never
// defined in any file is exactly one UnknownRuleID error.
func TestAssemble_NoDanglingIds(t *testing.T) {
	files := []assemble.FileResult{
		{FileAlias: "", Blocks: ruleBlock("", "Main", "X"), StartID: ".Main.X"},
	}
	appeared := map[string]grule.Position{
		".Main.X":       {},
		".Other.Ghost":  {},
	}
	sink := diag.NewCollector()

	assemble.Assemble(files, appeared, sink)

	errs := sink.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindUnknownRuleID, errs[0].Kind)
}

// No top-level start id set → NoStartCommandInMainBlock.
func TestAssemble_NoStartCommand(t *testing.T) {
	files := []assemble.FileResult{
		{FileAlias: "", Blocks: ruleBlock("", "Main", "X")},
	}
	sink := diag.NewCollector()

	assemble.Assemble(files, map[string]grule.Position{}, sink)

	errs := sink.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindNoStartCommandInMainBlock, errs[0].Kind)
}

// Two files sharing a file-alias is a hard error; the second is skipped.
func TestAssemble_DuplicatedFileAlias(t *testing.T) {
	files := []assemble.FileResult{
		{FileAlias: "", Blocks: ruleBlock("", "Main", "X"), StartID: ".Main.X"},
		{FileAlias: "f2", Blocks: ruleBlock("f2", "Main", "R")},
		{FileAlias: "f2", Blocks: ruleBlock("f2", "Other", "S")},
	}
	sink := diag.NewCollector()

	cat := assemble.Assemble(files, map[string]grule.Position{}, sink)

	errs := sink.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindDuplicatedFileAliasName, errs[0].Kind)
	_, ok := cat.Lookup("f2.Main.R")
	assert.True(t, ok)
	_, ok = cat.Lookup("f2.Other.S")
	assert.False(t, ok, "the second file sharing the alias must not be merged")
}
