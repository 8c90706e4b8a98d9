package transducer

import "github.com/katalvlaran/stlmon/signal"

// ComputeUpperRob and ComputeLowerRob implement the quasi-monotonic
// robustness baseline that the causation evaluators in eval_causation.go
// compare against (SPEC_FULL.md §4.C'). spec.md treats these as an existing
// external black box with the same signal contract as the causation
// variants; this package supplies the standard recursive definitions with no
// causation tightening, since there is no real external provider in this
// module.

// ComputeUpperRob returns the upper quasi-monotonic robustness bound and
// writes it to n.ZUp.
func (n *Node) ComputeUpperRob() float64 {
	switch n.Kind {
	case KindAtom:
		return n.atomBound(n.ZUp, signal.TOP)
	case KindAnd:
		n.Left.ComputeUpperRob()
		n.Right.ComputeUpperRob()
		n.ZUp = signal.And(n.Left.ZUp, n.Right.ZUp)
		return n.finish(n.ZUp, signal.TOP)
	case KindOr:
		n.Left.ComputeUpperRob()
		n.Right.ComputeUpperRob()
		n.ZUp = signal.Or(n.Left.ZUp, n.Right.ZUp)
		return n.finish(n.ZUp, signal.TOP)
	case KindNot:
		n.Left.ComputeLowerRob()
		n.ZUp = signal.Not(n.Left.ZLow)
		return n.finish(n.ZUp, signal.TOP)
	case KindEventually:
		n.Left.ComputeUpperRob()
		n.ZUp = signal.TimedEventually(n.Left.ZUp, n.paramA(), n.paramB())
		return n.finish(n.ZUp, signal.TOP)
	case KindAlways:
		n.Left.ComputeUpperRob()
		n.ZUp = signal.TimedGlobally(n.Left.ZUp, n.paramA(), n.paramB())
		return n.finish(n.ZUp, signal.TOP)
	default:
		panic(ErrUnknownKind)
	}
}

// ComputeLowerRob returns the lower quasi-monotonic robustness bound and
// writes it to n.ZLow.
func (n *Node) ComputeLowerRob() float64 {
	switch n.Kind {
	case KindAtom:
		return n.atomBound(n.ZLow, signal.BOTTOM)
	case KindAnd:
		n.Left.ComputeLowerRob()
		n.Right.ComputeLowerRob()
		n.ZLow = signal.And(n.Left.ZLow, n.Right.ZLow)
		return n.finish(n.ZLow, signal.BOTTOM)
	case KindOr:
		n.Left.ComputeLowerRob()
		n.Right.ComputeLowerRob()
		n.ZLow = signal.Or(n.Left.ZLow, n.Right.ZLow)
		return n.finish(n.ZLow, signal.BOTTOM)
	case KindNot:
		n.Left.ComputeUpperRob()
		n.ZLow = signal.Not(n.Left.ZUp)
		return n.finish(n.ZLow, signal.BOTTOM)
	case KindEventually:
		n.Left.ComputeLowerRob()
		n.ZLow = signal.TimedEventually(n.Left.ZLow, n.paramA(), n.paramB())
		return n.finish(n.ZLow, signal.BOTTOM)
	case KindAlways:
		n.Left.ComputeLowerRob()
		n.ZLow = signal.TimedGlobally(n.Left.ZLow, n.paramA(), n.paramB())
		return n.finish(n.ZLow, signal.BOTTOM)
	default:
		panic(ErrUnknownKind)
	}
}
