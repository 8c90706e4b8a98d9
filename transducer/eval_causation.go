package transducer

import (
	"math"

	"github.com/katalvlaran/stlmon/signal"
)

// etRoundScale backs etRound; 10^HorizonEpsilonDecimals.
var etRoundScale = math.Pow(10, float64(signal.HorizonEpsilonDecimals))

// etRound snaps a horizon endpoint to HorizonEpsilonDecimals decimal places,
// preserved verbatim from the source monitor (SPEC_FULL.md §4.F /
// spec.md §9): downstream timestamp comparisons assume this normalization.
func etRound(x float64) float64 {
	return math.Round(x*etRoundScale) / etRoundScale
}

// CausationUpper returns the upper causation-optimized robustness bound and
// writes it to n.CauUp.
func (n *Node) CausationUpper() float64 {
	switch n.Kind {
	case KindAtom:
		return n.atomBound(n.CauUp, signal.TOP)
	case KindAnd:
		return n.andCausationUpper()
	case KindOr:
		return n.orCausationUpper()
	case KindNot:
		return n.notCausationUpper()
	case KindEventually:
		return n.eventuallyCausationUpper()
	case KindAlways:
		return n.alwaysCausationUpper()
	default:
		panic(ErrUnknownKind)
	}
}

// CausationLower returns the lower causation-optimized robustness bound and
// writes it to n.CauLow.
func (n *Node) CausationLower() float64 {
	switch n.Kind {
	case KindAtom:
		return n.atomBound(n.CauLow, signal.BOTTOM)
	case KindAnd:
		return n.andCausationLower()
	case KindOr:
		return n.orCausationLower()
	case KindNot:
		return n.notCausationLower()
	case KindEventually:
		return n.eventuallyCausationLower()
	case KindAlways:
		return n.alwaysCausationLower()
	default:
		panic(ErrUnknownKind)
	}
}

// andCausationUpper: cau_up is the simple, symmetric AND of both children's
// causation-upper signals (SPEC_FULL.md §4.E).
func (n *Node) andCausationUpper() float64 {
	n.Left.CausationUpper()
	n.Right.CausationUpper()
	n.CauUp = signal.And(n.Left.CauUp, n.Right.CauUp)
	return n.finish(n.CauUp, signal.TOP)
}

// andCausationLower implements the AND soundness rule: the OR of the two
// asymmetric combinations of one child's causal lower bound with the other's
// quasi-monotonic lower robustness. spec.md §9's Open Question is resolved
// here by evaluating both children's CausationLower and both children's
// ComputeLowerRob into their own node-owned fields before combining, instead
// of interleaving the calls as the source monitor does (which risks one
// call's side effects being read by a combination that expected the other's).
func (n *Node) andCausationLower() float64 {
	n.Left.CausationLower()
	n.Right.ComputeLowerRob()
	n.Left.ComputeLowerRob()
	n.Right.CausationLower()

	n.cauLowL = signal.And(n.Left.CauLow, n.Right.ZLow)
	n.cauLowL.Resize(n.StartTime, math.Min(n.Left.CauLow.EndTime, n.Right.ZLow.EndTime), signal.BOTTOM)
	if n.cauLowL.Empty() {
		n.cauLowL.AppendSample(n.StartTime, signal.BOTTOM)
	}

	n.cauLowR = signal.And(n.Left.ZLow, n.Right.CauLow)
	n.cauLowR.Resize(n.StartTime, math.Min(n.Left.ZLow.EndTime, n.Right.CauLow.EndTime), signal.BOTTOM)
	if n.cauLowR.Empty() {
		n.cauLowR.AppendSample(n.StartTime, signal.BOTTOM)
	}

	n.CauLow = signal.Or(n.cauLowL, n.cauLowR)
	return n.finish(n.CauLow, signal.BOTTOM)
}

// orCausationUpper is the De Morgan dual of andCausationLower: the AND of
// the two asymmetric OR combinations.
func (n *Node) orCausationUpper() float64 {
	n.Left.CausationUpper()
	n.Right.ComputeUpperRob()
	n.Left.ComputeUpperRob()
	n.Right.CausationUpper()

	n.cauUpL = signal.Or(n.Left.CauUp, n.Right.ZUp)
	n.cauUpL.Resize(n.StartTime, math.Min(n.Left.CauUp.EndTime, n.Right.ZUp.EndTime), signal.TOP)
	if n.cauUpL.Empty() {
		n.cauUpL.AppendSample(n.StartTime, signal.TOP)
	}

	n.cauUpR = signal.Or(n.Left.ZUp, n.Right.CauUp)
	n.cauUpR.Resize(n.StartTime, math.Min(n.Left.ZUp.EndTime, n.Right.CauUp.EndTime), signal.TOP)
	if n.cauUpR.Empty() {
		n.cauUpR.AppendSample(n.StartTime, signal.TOP)
	}

	n.CauUp = signal.And(n.cauUpL, n.cauUpR)
	return n.finish(n.CauUp, signal.TOP)
}

// orCausationLower is the De Morgan dual of andCausationUpper: the simple OR
// of both children's causation-lower signals.
func (n *Node) orCausationLower() float64 {
	n.Left.CausationLower()
	n.Right.CausationLower()
	n.CauLow = signal.Or(n.Left.CauLow, n.Right.CauLow)
	return n.finish(n.CauLow, signal.BOTTOM)
}

func (n *Node) notCausationUpper() float64 {
	n.Left.CausationLower()
	if n.Left.CauLow.Empty() {
		n.CauUp = signal.New(n.StartTime, signal.TOP)
		return n.CauUp.FrontValue()
	}
	n.CauUp = signal.Not(n.Left.CauLow)
	return n.finish(n.CauUp, signal.TOP)
}

func (n *Node) notCausationLower() float64 {
	n.Left.CausationUpper()
	if n.Left.CauUp.Empty() {
		n.CauLow = signal.New(n.StartTime, signal.BOTTOM)
		return n.CauLow.FrontValue()
	}
	n.CauLow = signal.Not(n.Left.CauUp)
	return n.finish(n.CauLow, signal.BOTTOM)
}

// eventuallyCausationUpper is the dual of alwaysCausationLower: cauM takes
// the causal path (timed_globally over the child's causation-upper), zM
// takes the quasi-monotonic path (timed_eventually over the child's upper
// robustness, trimmed by b-a to discard values computed from partial
// future data), and the two are OR-ed.
func (n *Node) eventuallyCausationUpper() float64 {
	a, b := n.paramA(), n.paramB()

	n.Left.CausationUpper()
	if n.Left.CauUp.EndTime < a {
		n.cauM = signal.New(n.StartTime, signal.TOP)
	} else {
		n.cauM = signal.TimedGlobally(n.Left.CauUp, a, b)
		et := etRound(math.Min(n.cauM.EndTime, n.EndTime))
		n.cauM.Resize(n.StartTime, math.Max(n.StartTime, et), 0)
		if n.cauM.Empty() {
			n.cauM.AppendSample(n.StartTime, signal.TOP)
		}
	}

	n.Left.ComputeUpperRob()
	if n.Left.ZUp.EndTime < a {
		n.zM = signal.New(n.StartTime, signal.TOP)
	} else {
		n.zM = signal.TimedEventually(n.Left.ZUp, a, b)
		et := etRound(math.Min(n.zM.EndTime-b+a, n.EndTime))
		n.zM.Resize(n.StartTime, et, 0)
		if n.zM.Empty() {
			n.zM.AppendSample(n.StartTime, signal.TOP)
		}
	}

	n.CauUp = signal.Or(n.cauM, n.zM)
	n.CauUp.Resize(n.StartTime, math.Min(n.cauM.EndTime, n.zM.EndTime), signal.TOP)
	if n.CauUp.Empty() {
		n.CauUp.AppendSample(n.StartTime, signal.TOP)
	}
	return n.CauUp.FrontValue()
}

// eventuallyCausationLower: if not enough of the child's causal lower bound
// has been observed yet, the bound stays BOTTOM; otherwise it is the timed
// eventually of the child's causation-lower signal.
func (n *Node) eventuallyCausationLower() float64 {
	a, b := n.paramA(), n.paramB()

	n.Left.CausationLower()
	if n.Left.CauLow.EndTime < a {
		n.CauLow = signal.New(n.StartTime, signal.BOTTOM)
		return n.CauLow.FrontValue()
	}

	n.CauLow = signal.TimedEventually(n.Left.CauLow, a, b)
	et := etRound(math.Min(n.CauLow.EndTime, n.EndTime))
	n.CauLow.Resize(n.StartTime, math.Max(n.StartTime, et), 0)
	if n.CauLow.Empty() {
		n.CauLow.AppendSample(n.StartTime, signal.BOTTOM)
	}
	return n.CauLow.FrontValue()
}

// alwaysCausationUpper is the mirror of eventuallyCausationLower, using
// timed_globally and TOP defaults.
func (n *Node) alwaysCausationUpper() float64 {
	a, b := n.paramA(), n.paramB()

	n.Left.CausationUpper()
	if n.Left.CauUp.EndTime < a {
		n.CauUp = signal.New(n.StartTime, signal.TOP)
		return n.CauUp.FrontValue()
	}

	n.CauUp = signal.TimedGlobally(n.Left.CauUp, a, b)
	et := etRound(math.Min(n.CauUp.EndTime, n.EndTime))
	n.CauUp.Resize(n.StartTime, math.Max(n.StartTime, et), 0)
	if n.CauUp.Empty() {
		n.CauUp.AppendSample(n.StartTime, signal.TOP)
	}
	return n.CauUp.FrontValue()
}

// alwaysCausationLower is the mirror of eventuallyCausationUpper: cauM takes
// timed_eventually over the child's causation-lower, zM takes timed_globally
// over the child's lower robustness (trimmed by b-a), and the two are
// AND-ed — the outer combiner and both inner operators swap relative to
// eventuallyCausationUpper, and TOP/BOTTOM swap throughout.
func (n *Node) alwaysCausationLower() float64 {
	a, b := n.paramA(), n.paramB()

	n.Left.CausationLower()
	if n.Left.CauLow.EndTime < a {
		n.cauM = signal.New(n.StartTime, signal.BOTTOM)
	} else {
		n.cauM = signal.TimedEventually(n.Left.CauLow, a, b)
		et := etRound(math.Min(n.cauM.EndTime, n.EndTime))
		n.cauM.Resize(n.StartTime, math.Max(n.StartTime, et), 0)
		if n.cauM.Empty() {
			n.cauM.AppendSample(n.StartTime, signal.BOTTOM)
		}
	}

	n.Left.ComputeLowerRob()
	if n.Left.ZLow.EndTime < a {
		n.zM = signal.New(n.StartTime, signal.BOTTOM)
	} else {
		n.zM = signal.TimedGlobally(n.Left.ZLow, a, b)
		et := etRound(math.Min(n.zM.EndTime-b+a, n.EndTime))
		n.zM.Resize(n.StartTime, et, 0)
		if n.zM.Empty() {
			n.zM.AppendSample(n.StartTime, signal.BOTTOM)
		}
	}

	n.CauLow = signal.And(n.cauM, n.zM)
	n.CauLow.Resize(n.StartTime, math.Min(n.cauM.EndTime, n.zM.EndTime), signal.BOTTOM)
	if n.CauLow.Empty() {
		n.CauLow.AppendSample(n.StartTime, signal.BOTTOM)
	}
	return n.CauLow.FrontValue()
}
