package grule

import (
	"fmt"
	"math"
)

// Lookahead is the non-consuming match predicate a group or expression may
// carry: none, positive ('&'), or negative ('!').
type Lookahead int

const (
	LookaheadNone Lookahead = iota
	LookaheadPositive
	LookaheadNegative
)

func (l Lookahead) String() string {
	switch l {
	case LookaheadPositive:
		return "&"
	case LookaheadNegative:
		return "!"
	default:
		return ""
	}
}

// LookaheadFromSymbol converts a surface-syntax lookahead symbol ("&" or
// "!") to its Lookahead value. Any other input returns LookaheadNone.
func LookaheadFromSymbol(sym string) Lookahead {
	switch sym {
	case "&":
		return LookaheadPositive
	case "!":
		return LookaheadNegative
	default:
		return LookaheadNone
	}
}

// LoopMax is the maximum repetition bound of a LoopCount. Infinite is used
// for unbounded upper bounds ('*', '+', "{n,}").
const LoopMax = math.MaxInt

// LoopCount is the (min, max) repetition bound a group or expression body
// may carry. Max == LoopMax represents an unbounded ("infinite") upper
// bound.
type LoopCount struct {
	Min int
	Max int
}

// Once is the default loop count for an element with no loop qualifier:
// exactly one occurrence.
func Once() LoopCount {
	return LoopCount{Min: 1, Max: 1}
}

// IsInfinite returns whether lc has no upper bound.
func (lc LoopCount) IsInfinite() bool {
	return lc.Max == LoopMax
}

// Valid reports whether lc satisfies spec.md's loop-count invariant: min <=
// max, and min == 0 && max == 0 is rejected as meaningless (an element that
// can never match is never a useful loop count).
func (lc LoopCount) Valid() bool {
	if lc.Min > lc.Max {
		return false
	}
	if lc.Min == 0 && lc.Max == 0 {
		return false
	}
	return true
}

func (lc LoopCount) String() string {
	switch {
	case lc.Min == 0 && lc.Max == 1:
		return "?"
	case lc.Min == 0 && lc.IsInfinite():
		return "*"
	case lc.Min == 1 && lc.IsInfinite():
		return "+"
	case lc.Min == lc.Max:
		return fmt.Sprintf("{%d}", lc.Min)
	case lc.IsInfinite():
		return fmt.Sprintf("{%d,}", lc.Min)
	case lc.Min == 0:
		return fmt.Sprintf("{,%d}", lc.Max)
	default:
		return fmt.Sprintf("{%d,%d}", lc.Min, lc.Max)
	}
}

// NewLoopCount returns the LoopCount for an explicit "{min,max}" or "{n}"
// form where both bounds are known integers.
func NewLoopCount(min, max int) LoopCount {
	return LoopCount{Min: min, Max: max}
}

// NewOpenLoopCount returns the LoopCount for a one-sided "{n,}" (max
// unbounded) or "{,m}" (min zero) form.
func NewOpenLoopCount(knownBound int, knownIsMax bool) LoopCount {
	if knownIsMax {
		return LoopCount{Min: 0, Max: knownBound}
	}
	return LoopCount{Min: knownBound, Max: LoopMax}
}

// LoopFromSymbol converts one of the shorthand loop symbols ('?', '*', '+')
// to a LoopCount. It does not handle the "{...}" forms; those are parsed
// numerically by the translator via NewLoopCount / NewOpenLoopCount.
func LoopFromSymbol(sym string) (LoopCount, bool) {
	switch sym {
	case "?":
		return LoopCount{Min: 0, Max: 1}, true
	case "*":
		return LoopCount{Min: 0, Max: LoopMax}, true
	case "+":
		return LoopCount{Min: 1, Max: LoopMax}, true
	default:
		return LoopCount{}, false
	}
}

// ReflectionKind selects how a node is emitted to the output AST.
type ReflectionKind int

const (
	// ReflectionKindNamed means the node is emitted under a name: either the
	// name given explicitly ("#name") or, if Name == "", the default name
	// derived from the element itself.
	ReflectionKindNamed ReflectionKind = iota
	// ReflectionKindNone means the node is omitted from the output AST ('#').
	ReflectionKindNone
	// ReflectionKindExpansion means the node's children are spliced into its
	// parent instead of the node itself appearing ('##').
	ReflectionKindExpansion
)

// ReflectionStyle is the reflection decorator a group or expression may
// carry, selecting whether and how it is emitted to the output AST.
type ReflectionStyle struct {
	Kind ReflectionKind
	Name string
}

// Reflection returns the "use this name" (or, if name == "", "use the
// element's default name") reflection style.
func Reflection(name string) ReflectionStyle {
	return ReflectionStyle{Kind: ReflectionKindNamed, Name: name}
}

// NoReflection returns the '#' reflection style: omit this node.
func NoReflection() ReflectionStyle {
	return ReflectionStyle{Kind: ReflectionKindNone}
}

// Expansion returns the '##' reflection style: splice children into parent.
func Expansion() ReflectionStyle {
	return ReflectionStyle{Kind: ReflectionKindExpansion}
}

func (rs ReflectionStyle) String() string {
	switch rs.Kind {
	case ReflectionKindNone:
		return "#"
	case ReflectionKindExpansion:
		return "##"
	default:
		if rs.Name == "" {
			return ""
		}
		return "#" + rs.Name
	}
}
