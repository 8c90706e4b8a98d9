package signal

// AppendSample adds a breakpoint (t, v[, d]) to the signal. If the signal is
// empty the sample becomes its first and only point. Otherwise, appending at
// or before the current EndTime is a silent no-op; appending strictly after
// it backfills the previous last sample's derivative from the observed slope
// and extends EndTime to t. d defaults to 0 when omitted.
func (sig *Signal) AppendSample(t, v float64, d ...float64) {
	deriv := 0.0
	if len(d) > 0 {
		deriv = d[0]
	}

	if sig.Empty() {
		sig.samples = append(sig.samples, Sample{Time: t, Value: v, Derivative: deriv})
		sig.BeginTime = t
		sig.EndTime = t
		return
	}
	if t <= sig.EndTime {
		return
	}

	last := &sig.samples[len(sig.samples)-1]
	last.Derivative = (v - last.Value) / (t - last.Time)
	sig.samples = append(sig.samples, Sample{Time: t, Value: v, Derivative: deriv})
	sig.EndTime = t
}

// AppendSignal appends every sample of other to sig, in order.
func (sig *Signal) AppendSignal(other *Signal) {
	for _, sm := range other.samples {
		sig.AppendSample(sm.Time, sm.Value, sm.Derivative)
	}
}

// Resize reshapes sig to the interval [s, t], padding with v where the
// interval extends past the existing data and trimming where it doesn't.
// If t is (meaningfully) before s, the signal collapses to empty with
// BeginTime = EndTime = 0, matching the degenerate-horizon handling in
// SPEC_FULL.md's error-handling design.
func (sig *Signal) Resize(s, t, v float64) {
	if t < s-resizeEpsilon {
		sig.samples = sig.samples[:0]
		sig.BeginTime = 0
		sig.EndTime = 0
		return
	}
	if t < s {
		t = s
	}

	var first Sample // last sample popped while trimming the front, if any

	if sig.BeginTime > s {
		sig.samples = append([]Sample{{Time: s, Value: sig.Front().Value, Derivative: 0}}, sig.samples...)
	} else {
		for !sig.Empty() && sig.Front().Time < s {
			first = sig.Front()
			sig.samples = sig.samples[1:]
		}
		if sig.Empty() {
			sig.samples = append(sig.samples, Sample{Time: s, Value: first.ValueAt(s), Derivative: 0})
			if sig.EndTime < s {
				sig.EndTime = s
			}
		} else if sig.Front().Time > s {
			val := first.ValueAt(s)
			sig.samples = append([]Sample{{Time: s, Value: val, Derivative: first.Derivative}}, sig.samples...)
		}
	}

	if sig.EndTime < t {
		if sig.Back().Value != v || sig.Back().Derivative != 0 {
			sig.samples = append(sig.samples, Sample{Time: sig.EndTime, Value: v, Derivative: 0})
		}
	} else {
		for !sig.Empty() && sig.Back().Time > t {
			sig.samples = sig.samples[:len(sig.samples)-1]
		}
	}

	if sig.Empty() {
		sig.samples = append(sig.samples, Sample{Time: s, Value: v, Derivative: 0})
	}

	sig.BeginTime = s
	sig.EndTime = t
}

// Shift translates every sample's time, plus BeginTime and EndTime, by a.
func (sig *Signal) Shift(a float64) {
	sig.BeginTime += a
	sig.EndTime += a
	for i := range sig.samples {
		sig.samples[i].Time += a
	}
}

// RemoveInf drops trailing samples whose value or derivative is TOP or
// BOTTOM, leaving only the well-defined tail of the signal.
func (sig *Signal) RemoveInf() {
	for !sig.Empty() {
		b := sig.Back()
		if b.Value == TOP || b.Derivative == TOP || b.Value == BOTTOM || b.Derivative == BOTTOM {
			sig.samples = sig.samples[:len(sig.samples)-1]
			continue
		}
		break
	}
}

// Reset clears all samples and collapses EndTime back to BeginTime, reusing
// the underlying storage rather than allocating a fresh slice — an atom
// node in package transducer Resets its output signal in place at every
// evaluation step.
func (sig *Signal) Reset() {
	sig.samples = sig.samples[:0]
	sig.EndTime = sig.BeginTime
}

// GetValue looks up the signal's value at time t. An exact sample match
// returns its value; if t falls between two samples, the value of the last
// sample strictly before t is returned (a left-neighbour lookup, not an
// interpolation — preserved verbatim from the monitor this package
// reimplements). If t precedes every sample or follows the last one, dir
// selects the fallback: TOP for dir=1, BOTTOM for dir=-1, 0 otherwise.
func (sig *Signal) GetValue(t float64, dir int) float64 {
	v := 0.0
	switch dir {
	case 1:
		v = TOP
	case -1:
		v = BOTTOM
	}

	var last Sample
	haveLast := false
	for _, sm := range sig.samples {
		if sm.Time == t {
			return sm.Value
		}
		if sm.Time > t {
			if haveLast {
				v = last.Value
			}
			return v
		}
		last = sm
		haveLast = true
	}
	return v
}

// Simplify ensures the signal's last sample sits exactly at EndTime,
// extrapolating the final segment if it currently stops short. The
// commented-out front-pruning logic in the original monitor stays disabled;
// only this tail extension is active.
func (sig *Signal) Simplify() {
	if sig.Empty() {
		return
	}
	if sig.Back().Time < sig.EndTime {
		b := sig.Back()
		sig.samples = append(sig.samples, Sample{Time: sig.EndTime, Value: b.ValueAt(sig.EndTime), Derivative: 0})
	}
}

// Clone returns an independent deep copy of sig.
func (sig *Signal) Clone() *Signal {
	out := &Signal{BeginTime: sig.BeginTime, EndTime: sig.EndTime}
	out.samples = append([]Sample(nil), sig.samples...)
	return out
}
