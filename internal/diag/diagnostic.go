package diag

import (
	"fmt"

	"github.com/oakmoth/gramble/internal/grule"
)

// Diagnostic is a single reported finding: a Kind, the position it was
// found at, and a human-readable detail message.
type Diagnostic struct {
	Kind     Kind
	Position grule.Position
	Detail   string
}

// New returns a Diagnostic of the given kind at pos, with detail built from
// format and args.
func New(kind Kind, pos grule.Position, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Position: pos, Detail: fmt.Sprintf(format, args...)}
}

// Severity returns the diagnostic's fixed severity, per its Kind.
func (d Diagnostic) Severity() Severity {
	return d.Kind.Severity()
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	if d.Position.IsEmpty() {
		return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
	}
	return fmt.Sprintf("%s: %s (at %s)", d.Kind, d.Detail, d.Position)
}

// Unwrap returns the sentinel error for d's Kind, so that
// errors.Is(d, diag.ErrUnknownRuleID) works for any Diagnostic of that kind.
func (d Diagnostic) Unwrap() error {
	return sentinels[d.Kind]
}
