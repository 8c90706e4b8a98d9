package signal

import (
	"math"
	"sort"
)

// segmentAt returns the sample that governs time t: the last sample with
// Time <= t, or the first sample if t precedes every sample. Panics on an
// empty signal; callers in this file only ever call it on non-empty signals.
func segmentAt(sig *Signal, t float64) Sample {
	cur := sig.samples[0]
	for _, sm := range sig.samples {
		if sm.Time > t {
			break
		}
		cur = sm
	}
	return cur
}

// valueAt evaluates sig's piecewise-linear value at t via its governing
// segment.
func valueAt(sig *Signal, t float64) float64 {
	return segmentAt(sig, t).ValueAt(t)
}

// combine builds the pointwise pick(a, b) of two piecewise-linear signals
// over their common domain [max(a.Begin,b.Begin), min(a.End,b.End)]. Because
// both operands are linear between breakpoints, a pointwise min/max is
// itself piecewise linear with at most one extra breakpoint per pair of
// consecutive input breakpoints (where the two segments cross); this walks
// the merged breakpoints and inserts that crossing point when the sign of
// (a-b) flips between them.
func combine(a, b *Signal, pick func(x, y float64) float64) *Signal {
	out := &Signal{}
	if a.Empty() || b.Empty() {
		return out
	}

	begin := math.Max(a.BeginTime, b.BeginTime)
	end := math.Min(a.EndTime, b.EndTime)
	if end < begin {
		return out
	}

	times := map[float64]struct{}{begin: {}, end: {}}
	for _, sm := range a.samples {
		if sm.Time > begin && sm.Time < end {
			times[sm.Time] = struct{}{}
		}
	}
	for _, sm := range b.samples {
		if sm.Time > begin && sm.Time < end {
			times[sm.Time] = struct{}{}
		}
	}
	sorted := make([]float64, 0, len(times))
	for t := range times {
		sorted = append(sorted, t)
	}
	sort.Float64s(sorted)

	appendPoint := func(t float64) {
		out.AppendSample(t, pick(valueAt(a, t), valueAt(b, t)))
	}

	appendPoint(sorted[0])
	for i := 0; i < len(sorted)-1; i++ {
		t0, t1 := sorted[i], sorted[i+1]
		d0 := valueAt(a, t0) - valueAt(b, t0)
		d1 := valueAt(a, t1) - valueAt(b, t1)
		if d0 != 0 && d1 != 0 && (d0 > 0) != (d1 > 0) {
			frac := d0 / (d0 - d1)
			appendPoint(t0 + frac*(t1-t0))
		}
		appendPoint(t1)
	}
	out.Simplify()
	return out
}

// And computes the pointwise minimum of two signals over their common time
// span; the result's EndTime is the min of the inputs'.
func And(a, b *Signal) *Signal {
	return combine(a, b, math.Min)
}

// Or computes the pointwise maximum of two signals, analogously to And.
func Or(a, b *Signal) *Signal {
	return combine(a, b, math.Max)
}

// Not computes the pointwise negation of a signal.
func Not(a *Signal) *Signal {
	if a.Empty() {
		return &Signal{BeginTime: a.BeginTime, EndTime: a.EndTime}
	}
	out := &Signal{}
	for _, sm := range a.samples {
		out.AppendSample(sm.Time, -sm.Value)
	}
	return out
}

// windowExtremum returns pick-extremum (sup for math.Max, inf for math.Min)
// of x over the closed interval [lo, hi]. x is piecewise linear, so its
// extremum over any interval is attained at a breakpoint inside the interval
// or at one of the two endpoints.
func windowExtremum(x *Signal, lo, hi float64, pick func(a, b float64) float64) float64 {
	v := valueAt(x, lo)
	for _, sm := range x.samples {
		if sm.Time > lo && sm.Time < hi {
			v = pick(v, sm.Value)
		}
	}
	if hi > lo {
		v = pick(v, valueAt(x, hi))
	}
	return v
}

// timedWindow computes, for each candidate t in x's valid output range, the
// pick-extremum of x over [t+a, t+b]. The output range is
// [x.BeginTime-a, x.EndTime-b] — the set of t for which the window lies
// entirely within x's known domain. Candidate breakpoints for the result are
// every x breakpoint shifted by -a and by -b, which is where the window's
// trailing or leading edge crosses an x breakpoint and the windowed extremum
// can change.
func timedWindow(x *Signal, a, b float64, pick func(v1, v2 float64) float64) *Signal {
	out := &Signal{}
	if x.Empty() {
		return out
	}

	tStart := x.BeginTime - a
	tEnd := x.EndTime - b
	if tEnd < tStart {
		return out
	}

	cand := map[float64]struct{}{tStart: {}, tEnd: {}}
	for _, sm := range x.samples {
		for _, t := range [2]float64{sm.Time - a, sm.Time - b} {
			if t > tStart && t < tEnd {
				cand[t] = struct{}{}
			}
		}
	}
	ts := make([]float64, 0, len(cand))
	for t := range cand {
		ts = append(ts, t)
	}
	sort.Float64s(ts)

	for _, t := range ts {
		out.AppendSample(t, windowExtremum(x, t+a, t+b, pick))
	}
	out.Simplify()
	return out
}

// TimedEventually computes, for each t, the supremum of x over [t+a, t+b].
func TimedEventually(x *Signal, a, b float64) *Signal {
	return timedWindow(x, a, b, math.Max)
}

// TimedGlobally computes, for each t, the infimum of x over [t+a, t+b].
func TimedGlobally(x *Signal, a, b float64) *Signal {
	return timedWindow(x, a, b, math.Min)
}
