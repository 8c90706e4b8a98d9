package signal

// TOP and BOTTOM are the sentinel values used throughout this package and
// package transducer as "no better bound yet" fills: TOP stands for +Inf,
// BOTTOM for -Inf. They are ordinary finite-looking float64 values rather
// than math.Inf() so that downstream arithmetic (subtraction for atomic
// predicates, negation) stays well defined instead of producing NaN.
const (
	TOP    = 1e18
	BOTTOM = -1e18
)

// HorizonEpsilonDecimals is the number of decimal places that temporal
// operators round horizon endpoints to before comparing them against sample
// times. Preserved verbatim from the source monitor this package reimplements:
// the rounding assumes sub-step timing resolution no finer than 10^-HorizonEpsilonDecimals.
const HorizonEpsilonDecimals = 2

// resizeEpsilon is the tolerance below which a requested end time is treated
// as strictly before the requested start time, collapsing the signal to
// empty. Mirrors the source monitor's 1e-14 guard in its resize routine.
const resizeEpsilon = 1e-14

// Sample is one breakpoint of a piecewise-linear function: between Time and
// the next sample's Time, Value advances linearly at Derivative. The last
// sample of any non-empty Signal always has Derivative 0 (the signal is
// constant past its end).
type Sample struct {
	Time       float64
	Value      float64
	Derivative float64
}

// ValueAt returns the value the linear segment starting at this sample would
// have at time t, extrapolating via the stored derivative.
func (s Sample) ValueAt(t float64) float64 {
	return s.Value + s.Derivative*(t-s.Time)
}

// Signal is an ordered sequence of Samples with strictly increasing times,
// all lying within [BeginTime, EndTime]. An empty Signal carries
// BeginTime == EndTime.
type Signal struct {
	BeginTime float64
	EndTime   float64
	samples   []Sample
}

// New constructs a single-sample Signal at time t with value v.
func New(t, v float64) *Signal {
	return &Signal{
		BeginTime: t,
		EndTime:   t,
		samples:   []Sample{{Time: t, Value: v, Derivative: 0}},
	}
}

// NewFromArrays builds a piecewise-linear Signal from parallel, strictly
// time-monotone arrays. The i-th sample's derivative is the slope to sample
// i+1; the last sample's derivative is 0.
func NewFromArrays(t, v []float64) *Signal {
	n := len(t)
	s := &Signal{}
	if n == 0 {
		return s
	}
	s.BeginTime = t[0]
	s.EndTime = t[n-1]
	if n == 1 {
		s.samples = []Sample{{Time: t[0], Value: v[0], Derivative: 0}}
		return s
	}
	s.samples = make([]Sample, 0, n)
	for i := 0; i < n-1; i++ {
		d := (v[i+1] - v[i]) / (t[i+1] - t[i])
		s.samples = append(s.samples, Sample{Time: t[i], Value: v[i], Derivative: d})
	}
	s.samples = append(s.samples, Sample{Time: t[n-1], Value: v[n-1], Derivative: 0})
	return s
}

// Len reports the number of samples currently stored.
func (s *Signal) Len() int { return len(s.samples) }

// Empty reports whether the Signal holds no samples.
func (s *Signal) Empty() bool { return len(s.samples) == 0 }

// Front returns the first sample. Panics if Empty.
func (s *Signal) Front() Sample { return s.samples[0] }

// Back returns the last sample. Panics if Empty.
func (s *Signal) Back() Sample { return s.samples[len(s.samples)-1] }

// Samples exposes the underlying breakpoints read-only; callers must not
// mutate the returned slice.
func (s *Signal) Samples() []Sample { return s.samples }

// FrontValue is a convenience used throughout package transducer: the
// scalar a node's evaluator returns to its caller is always the first
// sample's value of the signal it just produced.
func (s *Signal) FrontValue() float64 {
	if s.Empty() {
		return 0
	}
	return s.samples[0].Value
}
