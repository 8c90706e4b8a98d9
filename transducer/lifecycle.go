package transducer

import (
	"github.com/katalvlaran/stlmon/signal"
	"github.com/katalvlaran/stlmon/trace"
)

// resetSignals (re)allocates every output and scratch signal as empty. Used
// at construction and by Clone; during evaluation atom nodes Reset their
// outputs in place, while other nodes assign the Signals the algebra returns.
func (n *Node) resetSignals() {
	n.ZUp = &signal.Signal{}
	n.ZLow = &signal.Signal{}
	n.CauUp = &signal.Signal{}
	n.CauLow = &signal.Signal{}
	n.cauUpL = &signal.Signal{}
	n.cauUpR = &signal.Signal{}
	n.cauLowL = &signal.Signal{}
	n.cauLowR = &signal.Signal{}
	n.cauM = &signal.Signal{}
	n.zM = &signal.Signal{}
}

// SetHorizon sets the monitoring horizon [t0, t1] on the root node. Call
// SetDuration afterwards to propagate it down the tree — the two are
// separate steps because a caller may want to adjust the root's horizon
// more than once before committing it to every node.
func (n *Node) SetHorizon(t0, t1 float64) {
	n.StartTime = t0
	n.EndTime = t1
}

// SetDuration propagates this node's current horizon to its entire subtree.
// Every node shares a single horizon: the causation rules in SPEC_FULL.md
// §4 assume StartTime/EndTime are uniform across the tree.
func (n *Node) SetDuration() {
	if n.Left != nil {
		n.Left.StartTime, n.Left.EndTime = n.StartTime, n.EndTime
		n.Left.SetDuration()
	}
	if n.Right != nil {
		n.Right.StartTime, n.Right.EndTime = n.StartTime, n.EndTime
		n.Right.SetDuration()
	}
}

// SetTraceDataPtr attaches the shared, non-owning trace buffer to every
// node in the tree, and the named-interval-parameter symbol table alongside
// it.
func (n *Node) SetTraceDataPtr(tr *trace.Trace, symtab map[string]float64) {
	n.trace = tr
	n.symtab = symtab
	if n.Left != nil {
		n.Left.SetTraceDataPtr(tr, symtab)
	}
	if n.Right != nil {
		n.Right.SetTraceDataPtr(tr, symtab)
	}
}

// Clone returns a deep copy of the subtree rooted at n: fresh output/scratch
// signals, independent Left/Right children, the same trace pointer and
// symbol table (both non-owning references shared by the whole session).
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:       n.Kind,
		StartTime:  n.StartTime,
		EndTime:    n.EndTime,
		ColumnName: n.ColumnName,
		Column:     n.Column,
		Comparator: n.Comparator,
		RHS:        n.RHS,
		A:          n.A,
		B:          n.B,
		AParam:     n.AParam,
		BParam:     n.BParam,
		trace:      n.trace,
		symtab:     n.symtab,
	}
	c.Left = n.Left.Clone()
	c.Right = n.Right.Clone()
	c.resetSignals()
	return c
}

// finish enforces the four-evaluator output contract (SPEC_FULL.md §4.C):
// resize sig to begin at n.StartTime without changing its computed end, and
// if that leaves it empty, fill it with a single default sample.
func (n *Node) finish(sig *signal.Signal, fill float64) float64 {
	sig.Resize(n.StartTime, sig.EndTime, fill)
	if sig.Empty() {
		sig.AppendSample(n.StartTime, fill)
	}
	return sig.FrontValue()
}

// paramA resolves the lower temporal bound, preferring the named parameter
// if one was given and is present in the symbol table.
func (n *Node) paramA() float64 { return n.resolveParam(n.AParam, n.A) }

// paramB resolves the upper temporal bound, analogously to paramA.
func (n *Node) paramB() float64 { return n.resolveParam(n.BParam, n.B) }

func (n *Node) resolveParam(name string, literal float64) float64 {
	if name != "" {
		if v, ok := n.symtab[name]; ok {
			return v
		}
	}
	return literal
}
