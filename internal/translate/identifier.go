package translate

import (
	"strings"

	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// resolveChain resolves an identifier's 1/2/3-component chain into a fully
// qualified rule id, per spec.md §4.5, reporting a diagnostic and returning
// ("", false) when resolution fails.
func (c *lctx) resolveChain(parts []string, node *synt.Tree) (string, bool) {
	switch len(parts) {
	case 1:
		id := grule.QualifiedName(c.st.fileAlias, c.blockName, parts[0])
		return id, true

	case 2:
		target, ok := c.aliases.Resolve(parts[0])
		if !ok {
			c.st.report(diag.KindBlockAliasNotFound, node, "block alias %q not found", parts[0])
			return "", false
		}
		targetFile, targetBlock := splitAliasTarget(target)
		c.checkPrivacy(targetFile, targetBlock, parts[1], node)
		return grule.QualifiedName(targetFile, targetBlock, parts[1]), true

	case 3:
		c.checkPrivacy(parts[0], parts[1], parts[2], node)
		return grule.QualifiedName(parts[0], parts[1], parts[2]), true

	default:
		c.st.report(diag.KindInvalidID, node, "id chain must have 1, 2, or 3 components, got %d", len(parts))
		return "", false
	}
}

// checkPrivacy warns (spec.md §4.5) when a `_`-prefixed rule is referenced
// from a block other than the one that defines it, within the same file.
func (c *lctx) checkPrivacy(targetFile, targetBlock, rule string, node *synt.Tree) {
	if !strings.HasPrefix(rule, "_") {
		return
	}
	if targetFile != c.st.fileAlias {
		return
	}
	if targetBlock == c.blockName {
		return
	}
	c.st.report(diag.KindAttemptToAccessPrivateItem, node, "attempt to access private item %q from block %q", rule, c.blockName)
}

// splitAliasTarget splits the "<file-alias>.<block>" string an AliasTable
// maps aliases to. file-alias may itself be empty (top-level file), so the
// split is on the first '.' rather than strings.Split.
func splitAliasTarget(target string) (fileAlias, block string) {
	i := strings.IndexByte(target, '.')
	if i < 0 {
		return target, ""
	}
	return target[:i], target[i+1:]
}
