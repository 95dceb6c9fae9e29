package grule

// GroupKind selects how a Group's children combine.
type GroupKind int

const (
	// Sequence children are matched in order; all must match.
	Sequence GroupKind = iota
	// Choice children are alternatives tried left-to-right; the first match
	// wins.
	Choice
	// RandomOrder children may match in any order, each up to its own
	// Occurs bound.
	RandomOrder
)

func (k GroupKind) String() string {
	switch k {
	case Choice:
		return "Choice"
	case RandomOrder:
		return "RandomOrder"
	default:
		return "Sequence"
	}
}

// Group is an inner node of a rule body, owning an ordered list of child
// Elements (themselves Groups or Expressions).
type Group struct {
	Position Position
	Kind     GroupKind
	Children []Element

	Lookahead Lookahead

	// Loop is the repetition bound applied to the group as a whole (its
	// "?"/"*"/"+"/"{n,m}" qualifier). Defaults to Once().
	Loop LoopCount

	// Occurs is the per-child occurrence bound used only when this Group is
	// itself a direct child of a RandomOrder-kind parent (set via a
	// "^[min-max]" decorator on the SeqElem that produced this group).
	// Meaningless outside that context; defaults to Once().
	Occurs LoopCount

	Reflection ReflectionStyle
}

func (g *Group) isElement() {}

// Pos implements Element.
func (g *Group) Pos() Position {
	return g.Position
}

// NewGroup returns a Group with the spec-default qualifiers (no lookahead,
// loop count of exactly one, no explicit random-order occurrence bound, and
// the given reflection style).
func NewGroup(pos Position, kind GroupKind, reflection ReflectionStyle) *Group {
	return &Group{
		Position:   pos,
		Kind:       kind,
		Lookahead:  LookaheadNone,
		Loop:       Once(),
		Occurs:     Once(),
		Reflection: reflection,
	}
}
