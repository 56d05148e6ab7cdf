package volume

import (
	"fmt"
	"strconv"
)

// SelectorKind discriminates the Selector variants.
type SelectorKind int

const (
	// SelectMaster addresses the endpoint-wide master level.
	SelectMaster SelectorKind = iota
	// SelectChannel addresses one indexed channel. Left and right are
	// aliases for indexes 0 and 1.
	SelectChannel
	// SelectAll addresses every physical channel. Valid only as a
	// target, never as a reference.
	SelectAll
)

// Selector identifies master or a channel, as a target or as a reference
// source. Indexes are validated at resolution time against the endpoint's
// channel count, not at parse time.
type Selector struct {
	Kind  SelectorKind
	Index int
}

// Master returns the master selector.
func Master() Selector { return Selector{Kind: SelectMaster} }

// All returns the all-channels selector.
func All() Selector { return Selector{Kind: SelectAll} }

// Channel returns the selector for channel index n.
func Channel(n int) Selector { return Selector{Kind: SelectChannel, Index: n} }

// Left returns the selector for the conventional left channel (index 0).
func Left() Selector { return Channel(0) }

// Right returns the selector for the conventional right channel (index 1).
func Right() Selector { return Channel(1) }

func (s Selector) String() string {
	switch s.Kind {
	case SelectMaster:
		return "master"
	case SelectAll:
		return "all"
	default:
		return "channel " + strconv.Itoa(s.Index)
	}
}

// Verb is the action a token requests against its target.
type Verb int

const (
	// VerbSet replaces the target's level with the operand value.
	VerbSet Verb = iota
	// VerbIncrease adds the operand value to the target's snapshot level.
	VerbIncrease
	// VerbDecrease subtracts the operand value from the target's
	// snapshot level.
	VerbDecrease
)

func (v Verb) String() string {
	switch v {
	case VerbSet:
		return "set"
	case VerbIncrease:
		return "increase"
	default:
		return "decrease"
	}
}

// Operand is the right-hand side of an operation: either a literal
// percentage or a reference to another selector's snapshot level.
type Operand struct {
	Literal bool
	Value   float64
	Ref     Selector
}

// LiteralOperand wraps a literal percentage.
func LiteralOperand(pct float64) Operand { return Operand{Literal: true, Value: pct} }

// RefOperand wraps a reference to sel's current level.
func RefOperand(sel Selector) Operand { return Operand{Ref: sel} }

func (o Operand) String() string {
	if o.Literal {
		return strconv.FormatFloat(o.Value, 'f', -1, 64)
	}
	return o.Ref.String()
}

// Op pairs a target selector with the requested operation. A command is an
// ordered sequence of Op values.
type Op struct {
	Target  Selector
	Verb    Verb
	Operand Operand
}

func (o Op) String() string {
	return fmt.Sprintf("%s %s %s", o.Verb, o.Target, o.Operand)
}
