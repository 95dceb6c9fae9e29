package markdown_test

import (
	"testing"

	"github.com/oakmoth/gramble/internal/markdown"
	"github.com/stretchr/testify/assert"
)

func TestExtractGramble_SingleBlock(t *testing.T) {
	src := []byte("# Title\n\nSome prose.\n\n```gramble\n[Main]{\n+start A.R,\n}\n```\n\nMore prose.\n")

	got := markdown.ExtractGramble(src)

	assert.Contains(t, got, "[Main]{")
	assert.Contains(t, got, "+start A.R,")
	assert.NotContains(t, got, "prose")
}

func TestExtractGramble_IgnoresOtherLanguages(t *testing.T) {
	src := []byte("```go\nfunc main() {}\n```\n\n```gramble\nR<-\"a\",\n```\n")

	got := markdown.ExtractGramble(src)

	assert.NotContains(t, got, "func main")
	assert.Contains(t, got, "R<-\"a\",")
}

func TestExtractGramble_ConcatenatesMultipleBlocks(t *testing.T) {
	src := []byte("```gramble\n[A]{\n```\n\nsplit across blocks\n\n```gramble\nR<-\"a\",\n}\n```\n")

	got := markdown.ExtractGramble(src)

	assert.Contains(t, got, "[A]{")
	assert.Contains(t, got, "R<-\"a\",")
}
