package grule

import "fmt"

// Rule is a named production: a fully-qualified identifier, its local name,
// its generic and function parameter lists (distinct namespaces), and its
// root group.
type Rule struct {
	Position Position

	// Name is the fully-qualified identifier, "<file>.<block>.<rule>".
	Name string

	// LocalName is the bare rule name as it appears in its Define command.
	LocalName string

	// Generics is the ordered list of generic parameter names ("<G1, ...>").
	Generics []string

	// Params is the ordered list of function parameter names ("(F1, ...)").
	Params []string

	// Root is the root group of the rule's body, always wrapped with
	// Expansion reflection per spec.md §4.3's "wrap in an expansion root
	// group."
	Root *Group
}

// QualifiedName builds the fully-qualified rule id "<file>.<block>.<rule>"
// used throughout the catalog. An empty fileAlias (the top-level file)
// renders as a leading dot, per spec.md §6.
func QualifiedName(fileAlias, block, rule string) string {
	return fmt.Sprintf("%s.%s.%s", fileAlias, block, rule)
}
