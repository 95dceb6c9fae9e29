package translate

import (
	"strconv"
	"strings"

	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/grule"
	"github.com/oakmoth/gramble/internal/synt"
)

// lowerChoiceLike lowers a .Rule.PureChoice or .Rule.InstantPureChoice node
// into a group, per spec.md §4.4's "Choice lowering." Both productions are
// a Seq list interleaved with unsuppressed separator terminals (":" for
// ordered choice, "," for random-order; InstantPureChoice only ever uses
// ":"), which is exactly the shape NamedDescendants recovers: .Rule.Seq
// nodes alternating with bare terminal separator characters.
func lowerChoiceLike(c *lctx, node *synt.Tree) grule.Element {
	var seqs []*synt.Tree
	var sepKind byte
	mixed := false

	for _, k := range node.NamedDescendants() {
		switch {
		case k.Name == ".Rule.Seq":
			seqs = append(seqs, k)
		case k.Terminal && (k.Source.Lexeme == ":" || k.Source.Lexeme == ","):
			sep := k.Source.Lexeme[0]
			if sepKind == 0 {
				sepKind = sep
			} else if sepKind != sep {
				mixed = true
			}
		}
	}

	if len(seqs) == 0 {
		c.st.report(diag.KindInternalError, node, "no choice or expression content")
		return emptySequence(node)
	}
	if mixed {
		c.st.report(diag.KindInternalError, node, "choice mixes ':' and ',' separators at the same nesting level")
	}

	if len(seqs) == 1 {
		return lowerSeq(c, seqs[0])
	}

	kind := grule.Choice
	if sepKind == ',' {
		kind = grule.RandomOrder
	}
	g := grule.NewGroup(node.Pos(), kind, grule.Reflection(""))
	for _, s := range seqs {
		g.Children = append(g.Children, lowerSeq(c, s))
	}
	return g
}

// lowerSeq lowers a .Rule.Seq node's SeqElem children into a Sequence
// group, switching its own Kind to RandomOrder if any child carried a
// "^[min-max]" decoration (spec.md §4.4's random-order row: the decoration
// applies to the element's enclosing sequence, not the element alone).
func lowerSeq(c *lctx, node *synt.Tree) *grule.Group {
	g := grule.NewGroup(node.Pos(), grule.Sequence, grule.Reflection(""))
	anyRandomOrder := false
	for _, k := range node.NamedDescendants() {
		if k.Name != ".Rule.SeqElem" {
			continue
		}
		el, isRandomOrder := lowerSeqElem(c, k)
		if isRandomOrder {
			anyRandomOrder = true
		}
		g.Children = append(g.Children, el)
	}
	if anyRandomOrder {
		g.Kind = grule.RandomOrder
	}
	return g
}

// lowerSeqElem lowers one SeqElem's five optional decoration slots plus its
// body, per spec.md §4.4's table.
func lowerSeqElem(c *lctx, node *synt.Tree) (grule.Element, bool) {
	var body grule.Element
	lookahead := grule.LookaheadNone
	loop := grule.Once()
	occurs := grule.Once()
	isRandomOrder := false
	reflection := grule.Reflection("")
	haveReflection := false

	for _, k := range node.NamedDescendants() {
		switch k.Name {
		case ".Rule.Lookahead":
			lookahead = grule.LookaheadFromSymbol(k.Text())
		case ".Rule.Choice":
			inner := k.NamedDescendants()
			if len(inner) == 1 {
				body = lowerChoiceLike(c, inner[0])
			}
		case ".Rule.Expr":
			body = lowerExpr(c, k)
		case ".Rule.Loop":
			loop = lowerLoop(c, k)
		case ".Rule.RandomOrder":
			isRandomOrder = true
			occurs = lowerRandomOrderRange(c, k)
		case ".Rule.ASTReflectionStyle":
			reflection = lowerReflection(k)
			haveReflection = true
		}
	}

	if body == nil {
		c.st.report(diag.KindInternalError, node, "sequence element has no choice or expression content")
		body = emptySequence(node)
	}

	setLookahead(body, lookahead)
	setLoop(body, loop)
	if haveReflection {
		setReflection(body, reflection)
	}
	if isRandomOrder {
		setOccurs(body, occurs)
	}
	return body, isRandomOrder
}

// lowerLoop lowers a .Rule.Loop node: either one of the "?"/"*"/"+"
// shorthand terminals or a nested .Rule.LoopRange.
func lowerLoop(c *lctx, node *synt.Tree) grule.LoopCount {
	for _, k := range node.NamedDescendants() {
		if k.Name == ".Rule.LoopRange" {
			return lowerLoopRange(c, k)
		}
	}
	sym := node.Text()
	if lc, ok := grule.LoopFromSymbol(sym); ok {
		return lc
	}
	c.st.report(diag.KindInvalidLoopCount, node, "invalid loop count %q", sym)
	return grule.Once()
}

// lowerLoopRange lowers a .Rule.LoopRange node, covering both of spec.md
// §6's bracketed forms: "{" Num? "," Num? "}" and "{" Num "}". The comma
// terminal (left unsuppressed in the bootstrap catalog for exactly this
// reason) marks the boundary between the min and max digit runs; its
// absence means the fixed "{n}" form matched instead.
func lowerLoopRange(c *lctx, node *synt.Tree) grule.LoopCount {
	var before, after []string
	seenComma := false
	for _, k := range node.NamedDescendants() {
		if k.Terminal && k.Source.Lexeme == "," {
			seenComma = true
			continue
		}
		if seenComma {
			after = append(after, k.Text())
		} else {
			before = append(before, k.Text())
		}
	}

	if !seenComma {
		n, ok := parseNum(strings.Join(before, ""))
		if !ok {
			c.st.report(diag.KindInvalidLoopCount, node, "invalid loop count %q", node.Text())
			return grule.Once()
		}
		lc := grule.NewLoopCount(n, n)
		if !lc.Valid() {
			c.st.report(diag.KindInvalidLoopCount, node, "invalid loop count {%d}", n)
			return grule.Once()
		}
		return lc
	}

	minN, minOK := parseNum(strings.Join(before, ""))
	maxN, maxOK := parseNum(strings.Join(after, ""))

	var lc grule.LoopCount
	switch {
	case minOK && maxOK:
		lc = grule.NewLoopCount(minN, maxN)
	case minOK && !maxOK:
		lc = grule.NewOpenLoopCount(minN, false)
	case !minOK && maxOK:
		lc = grule.NewOpenLoopCount(maxN, true)
	default:
		c.st.report(diag.KindInvalidLoopCount, node, "invalid loop count %q", node.Text())
		return grule.Once()
	}
	if !lc.Valid() {
		c.st.report(diag.KindInvalidLoopCount, node, "invalid loop count %q", node.Text())
		return grule.Once()
	}
	return lc
}

func parseNum(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// lowerRandomOrderRange lowers a .Rule.RandomOrder node's optional
// "[min-max]" occurrence bound, defaulting to Once() when absent (meaning
// "exactly one occurrence, somewhere in the random order").
func lowerRandomOrderRange(c *lctx, node *synt.Tree) grule.LoopCount {
	inner := node.NamedDescendants()
	var rangeNode *synt.Tree
	for _, k := range inner {
		if k.Name == ".Rule.RandomOrderRange" {
			rangeNode = k
		}
	}
	if rangeNode == nil {
		return grule.Once()
	}

	// Split on the unsuppressed "-" terminal the same way .Rule.LoopRange's
	// comma is split: everything before it is the min digits (if any),
	// everything after is the max digits (if any).
	var before, after []string
	seenDash := false
	for _, k := range rangeNode.NamedDescendants() {
		if k.Terminal && k.Source.Lexeme == "-" {
			seenDash = true
			continue
		}
		if seenDash {
			after = append(after, k.Text())
		} else {
			before = append(before, k.Text())
		}
	}

	minN, minOK := parseNum(strings.Join(before, ""))
	maxN, maxOK := parseNum(strings.Join(after, ""))

	var lc grule.LoopCount
	switch {
	case minOK && maxOK:
		lc = grule.NewLoopCount(minN, maxN)
	case minOK && !maxOK:
		lc = grule.NewOpenLoopCount(minN, false)
	case !minOK && maxOK:
		lc = grule.NewOpenLoopCount(maxN, true)
	default:
		lc = grule.LoopCount{Min: 0, Max: grule.LoopMax}
	}
	if !lc.Valid() {
		c.st.report(diag.KindInvalidLoopCount, node, "invalid random-order range %q", rangeNode.Text())
		return grule.Once()
	}
	return lc
}

// lowerReflection lowers a .Rule.ASTReflectionStyle node. The "##"
// alternative survives as a literal terminal (Expansion); the "#"
// alternative suppresses its own "#" and leaves either nothing
// (NoReflection) or the spliced characters of an optional following
// .Misc.SingleID (a named reflection).
func lowerReflection(node *synt.Tree) grule.ReflectionStyle {
	kids := node.NamedDescendants()
	if len(kids) == 1 && kids[0].Terminal && kids[0].Source.Lexeme == "##" {
		return grule.Expansion()
	}
	if len(kids) == 0 {
		return grule.NoReflection()
	}
	var sb strings.Builder
	for _, k := range kids {
		sb.WriteString(k.Text())
	}
	return grule.Reflection(sb.String())
}

func setLookahead(el grule.Element, v grule.Lookahead) {
	switch e := el.(type) {
	case *grule.Group:
		e.Lookahead = v
	case *grule.Expression:
		e.Lookahead = v
	}
}

func setLoop(el grule.Element, v grule.LoopCount) {
	switch e := el.(type) {
	case *grule.Group:
		e.Loop = v
	case *grule.Expression:
		e.Loop = v
	}
}

func setOccurs(el grule.Element, v grule.LoopCount) {
	switch e := el.(type) {
	case *grule.Group:
		e.Occurs = v
	case *grule.Expression:
		e.Occurs = v
	}
}

func setReflection(el grule.Element, v grule.ReflectionStyle) {
	switch e := el.(type) {
	case *grule.Group:
		e.Reflection = v
	case *grule.Expression:
		e.Reflection = v
	}
}

// emptySequence returns a degenerate, always-matching empty Sequence group,
// used as a recovery value after an internal-error diagnostic so that
// lowering can continue and collect further diagnostics in the same file.
func emptySequence(node *synt.Tree) *grule.Group {
	return grule.NewGroup(node.Pos(), grule.Sequence, grule.Reflection(""))
}
