package compile_test

import (
	"testing"

	"github.com/oakmoth/gramble/internal/compile"
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SingleFile(t *testing.T) {
	sources := map[string]string{
		"": "[Main]{\n+start A.R,\n}\n[A]{\nR<-\"x\",\n}\n",
	}
	sink := diag.NewCollector()

	result := compile.Run(sources, sink)

	require.Empty(t, sink.Errors())
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, ".A.R", result.Catalog.Start)
	_, ok := result.Catalog.Lookup(".A.R")
	assert.True(t, ok)
}

func TestRun_CrossFileReference(t *testing.T) {
	sources := map[string]string{
		"":   "[Main]{\n+use f2.Main as O,\n+start Main.X,\nX<-O.R,\n}\n",
		"f2": "[Main]{\nR<-\"r\",\n}\n",
	}
	sink := diag.NewCollector()

	result := compile.Run(sources, sink)

	require.Empty(t, sink.Errors())
	_, ok := result.Catalog.Lookup("f2.Main.R")
	assert.True(t, ok)
	_, ok = result.Catalog.Lookup(".Main.X")
	assert.True(t, ok)
}

func TestRun_UnknownRuleIdFailsAssembly(t *testing.T) {
	sources := map[string]string{
		"": "[Main]{\n+start A.Ghost,\n}\n",
	}
	sink := diag.NewCollector()

	compile.Run(sources, sink)

	errs := sink.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindUnknownRuleID, errs[0].Kind)
}
