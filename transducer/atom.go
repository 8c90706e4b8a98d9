package transducer

import "github.com/katalvlaran/stlmon/signal"

// atomBound implements the three-case trace-bound construction shared by an
// atomic predicate's upper and lower evaluators (SPEC_FULL.md §4.D). An
// atomic predicate has no sibling to exploit causally, so its causation and
// quasi-monotonic evaluators are the same function; fill selects TOP for the
// upper variant, BOTTOM for the lower.
func (n *Node) atomBound(out *signal.Signal, fill float64) float64 {
	tr := n.trace
	size := tr.Size()
	b := tr.Last()[0]
	out.Reset()

	switch {
	case b < n.StartTime:
		out.AppendSample(n.StartTime, fill)
	case b > n.EndTime:
		out.AppendSample(n.StartTime, fill)
		out.AppendSample(n.EndTime, fill)
	default:
		out.AppendSample(n.StartTime, fill)
		if size > 2 {
			prev := tr.At(size - 2)[0]
			out.AppendSample(prev, fill)
		}
		vL := tr.Last()[n.Column]
		vR := n.RHS.Eval(tr)
		var val float64
		if n.Comparator == LessThan {
			val = vR - vL
		} else {
			val = vL - vR
		}
		out.AppendSample(b, val)
	}
	return out.FrontValue()
}
