package diag

import (
	"fmt"
	"io"

	"github.com/dekarrin/rosed"
)

const consoleWrapWidth = 100

// ConsoleSink streams diagnostics to an io.Writer as they are reported,
// then can render an end-of-run summary table. It wraps long messages at
// consoleWrapWidth using github.com/dekarrin/rosed, the same library and
// call shape the teacher uses for its own console output.
type ConsoleSink struct {
	w     io.Writer
	items []Diagnostic
}

// NewConsoleSink returns a ConsoleSink writing to w.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// Report implements Sink: it immediately prints the diagnostic and also
// retains it for Summary.
func (cs *ConsoleSink) Report(d Diagnostic) {
	cs.items = append(cs.items, d)

	line := fmt.Sprintf("[%s] %s", d.Severity(), d.Error())
	wrapped := rosed.Edit(line).Wrap(consoleWrapWidth).String()
	fmt.Fprintln(cs.w, wrapped)
}

// HasErrors reports whether any Error-severity diagnostic has been reported
// so far.
func (cs *ConsoleSink) HasErrors() bool {
	for _, d := range cs.items {
		if d.Severity() == SeverityError {
			return true
		}
	}
	return false
}

// Summary renders a table of every diagnostic reported so far (severity,
// kind, position, detail), using the same rosed.Edit(...).InsertTableOpts
// call shape the teacher's internal/ictiobus/parse/lalr.go uses for its
// own tabular debug output.
func (cs *ConsoleSink) Summary() string {
	data := [][]string{{"SEVERITY", "KIND", "POSITION", "DETAIL"}}
	for _, d := range cs.items {
		data = append(data, []string{
			d.Severity().String(),
			d.Kind.String(),
			d.Position.String(),
			d.Detail,
		})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").InsertTableOpts(0, data, consoleWrapWidth, tableOpts).String()
}
