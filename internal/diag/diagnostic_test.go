package diag

import (
	"errors"
	"testing"

	"github.com/oakmoth/gramble/internal/grule"
	"github.com/stretchr/testify/assert"
)

func Test_Diagnostic_ErrorsIs(t *testing.T) {
	d := New(KindUnknownRuleID, grule.Position{File: "a.gmbl", Offset: 12}, "referenced id %q not in catalog", ".Syntax.X")

	assert.True(t, errors.Is(d, ErrUnknownRuleID))
	assert.False(t, errors.Is(d, ErrInvalidLoopCount))
	assert.Equal(t, SeverityError, d.Severity())
}

func Test_Collector_SeparatesBySeverity(t *testing.T) {
	c := NewCollector()
	c.Report(New(KindNamingRuleViolation, grule.Empty(), "block %q is not PascalCase", "other"))
	c.Report(New(KindDuplicatedRuleName, grule.Empty(), "rule %q already defined", "X"))

	assert.Len(t, c.All(), 2)
	assert.Len(t, c.Warnings(), 1)
	assert.Len(t, c.Errors(), 1)
	assert.True(t, c.HasErrors())
}

func Test_Collector_NoErrors(t *testing.T) {
	c := NewCollector()
	c.Report(New(KindAttemptToAccessPrivateItem, grule.Empty(), "private rule %q referenced from another block", "_Helper"))

	assert.False(t, c.HasErrors())
}
