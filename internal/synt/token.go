package synt

import "fmt"

// Token is a single matched span of source text, together with the
// position information needed to build a grule.Position / diagnostic.
type Token struct {
	RuleID string
	Lexeme string
	Offset int
	File   string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q@%d", t.RuleID, t.Lexeme, t.Offset)
}
