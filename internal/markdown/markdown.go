// Package markdown extracts literate grammar sources embedded in Markdown
// documents as fenced "gramble" code blocks, grounded on
// internal/ictiobus/fishi.go's fishiScanner / GetFishiFromMarkdown, which
// does the same thing for the teacher's own embedded "fishi" DSL.
package markdown

import (
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	mkast "github.com/gomarkdown/markdown/ast"
	mkparser "github.com/gomarkdown/markdown/parser"
)

type grambleScanner bool

func (gs grambleScanner) RenderNode(w io.Writer, node mkast.Node, entering bool) mkast.WalkStatus {
	if !entering {
		return mkast.GoToNext
	}

	codeBlock, ok := node.(*mkast.CodeBlock)
	if !ok || codeBlock == nil {
		return mkast.GoToNext
	}

	if strings.ToLower(strings.TrimSpace(string(codeBlock.Info))) == "gramble" {
		w.Write(codeBlock.Literal)
	}
	return mkast.GoToNext
}

func (gs grambleScanner) RenderHeader(w io.Writer, ast mkast.Node) {}
func (gs grambleScanner) RenderFooter(w io.Writer, ast mkast.Node) {}

// ExtractGramble walks a Markdown document and concatenates the literal
// contents of every fenced code block tagged "gramble", in document order.
func ExtractGramble(mdText []byte) string {
	doc := markdown.Parse(mdText, mkparser.New())
	var scanner grambleScanner
	return string(markdown.Render(doc, scanner))
}
