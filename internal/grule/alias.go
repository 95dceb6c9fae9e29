package grule

// AliasTable maps a local block alias (as introduced by a Use command) to
// the "<file-alias>.<block-name>" it refers to. Its lifetime is one block:
// built while emitting that block's commands, then cleared before moving
// on to the next block in the same file.
type AliasTable map[string]string

// NewAliasTable returns an empty AliasTable.
func NewAliasTable() AliasTable {
	return make(AliasTable)
}

// Set records that alias refers to "<fileAlias>.<block>".
func (t AliasTable) Set(alias, fileAlias, block string) {
	t[alias] = fileAlias + "." + block
}

// Resolve returns the "<file-alias>.<block>" that alias was registered
// against, or ("", false) if no such alias exists.
func (t AliasTable) Resolve(alias string) (string, bool) {
	v, ok := t[alias]
	return v, ok
}
