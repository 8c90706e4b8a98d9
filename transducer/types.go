package transducer

import (
	"github.com/katalvlaran/stlmon/signal"
	"github.com/katalvlaran/stlmon/trace"
)

// Kind identifies which STL operator a Node evaluates. The set is closed —
// every evaluator is a switch over Kind, not an open interface hierarchy.
type Kind int

const (
	// KindAtom is an atomic predicate: signal OP threshold.
	KindAtom Kind = iota
	// KindAnd is the binary conjunction of Left and Right.
	KindAnd
	// KindOr is the binary disjunction of Left and Right.
	KindOr
	// KindNot is the negation of Left.
	KindNot
	// KindEventually is ev_[a,b] Left.
	KindEventually
	// KindAlways is alw_[a,b] Left.
	KindAlways
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindNot:
		return "not"
	case KindEventually:
		return "eventually"
	case KindAlways:
		return "always"
	default:
		return "unknown"
	}
}

// Comparator is the relational operator of an atomic predicate.
type Comparator int

const (
	// LessThan is the STL "<" comparator.
	LessThan Comparator = iota
	// GreaterThan is the STL ">" comparator.
	GreaterThan
)

// ValueExpr is an atomic predicate's right-hand side: either a literal
// threshold or a reference to another trace column, evaluated against the
// trace's most recent row.
type ValueExpr struct {
	IsColumn bool
	Column   int
	Literal  float64
}

// Eval resolves the value-expression against the most recently appended
// trace row.
func (v ValueExpr) Eval(tr *trace.Trace) float64 {
	if v.IsColumn {
		return tr.Last()[v.Column]
	}
	return v.Literal
}

// Node is one STL formula tree node. Every field below that is unused for a
// given Kind is simply left at its zero value.
type Node struct {
	Kind Kind

	StartTime float64
	EndTime   float64

	// Outputs. Every evaluator writes its result here and returns its
	// FrontValue().
	ZUp, ZLow     *signal.Signal
	CauUp, CauLow *signal.Signal

	// Scratch, replaced by fresh algebra results at each evaluation.
	cauUpL, cauUpR, cauLowL, cauLowR *signal.Signal
	cauM, zM                         *signal.Signal

	// Tree structure. Right is nil for unary nodes (Not/Eventually/Always)
	// and both are nil for Atom.
	Left, Right *Node

	// Atom fields.
	ColumnName string
	Column     int
	Comparator Comparator
	RHS        ValueExpr

	// Temporal-operator fields (Eventually/Always). A/B are the literal
	// fallback; AParam/BParam are optional named-parameter keys resolved
	// through the symbol table at evaluation time (spec.md §7 item 5: a
	// missing named parameter silently falls back to the literal).
	A, B           float64
	AParam, BParam string

	trace  *trace.Trace
	symtab map[string]float64
}

// NewAtom constructs an atomic predicate node: column OP rhs.
func NewAtom(columnName string, column int, comp Comparator, rhs ValueExpr) *Node {
	n := &Node{Kind: KindAtom, ColumnName: columnName, Column: column, Comparator: comp, RHS: rhs}
	n.resetSignals()
	return n
}

// NewAnd constructs a binary conjunction node.
func NewAnd(left, right *Node) *Node {
	n := &Node{Kind: KindAnd, Left: left, Right: right}
	n.resetSignals()
	return n
}

// NewOr constructs a binary disjunction node.
func NewOr(left, right *Node) *Node {
	n := &Node{Kind: KindOr, Left: left, Right: right}
	n.resetSignals()
	return n
}

// NewNot constructs a negation node.
func NewNot(child *Node) *Node {
	n := &Node{Kind: KindNot, Left: child}
	n.resetSignals()
	return n
}

// NewEventually constructs an ev_[a,b] node. aParam/bParam may be empty to
// mean "always use the literal bound".
func NewEventually(child *Node, a, b float64, aParam, bParam string) *Node {
	n := &Node{Kind: KindEventually, Left: child, A: a, B: b, AParam: aParam, BParam: bParam}
	n.resetSignals()
	return n
}

// NewAlways constructs an alw_[a,b] node.
func NewAlways(child *Node, a, b float64, aParam, bParam string) *Node {
	n := &Node{Kind: KindAlways, Left: child, A: a, B: b, AParam: aParam, BParam: bParam}
	n.resetSignals()
	return n
}
