package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/signal"
)

func TestAppendSample_NoopAtOrBeforeEnd(t *testing.T) {
	s := signal.New(0, 1)
	s.AppendSample(5, 2)
	require.Equal(t, 5.0, s.EndTime)
	require.Equal(t, 2, s.Len())

	// Appending at or before EndTime is a silent no-op.
	s.AppendSample(3, 99)
	s.AppendSample(5, 99)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 5.0, s.EndTime)
}

func TestAppendSample_BackfillsDerivative(t *testing.T) {
	s := signal.New(0, 0)
	s.AppendSample(2, 4)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 2.0, s.Samples()[0].Derivative) // (4-0)/(2-0)
	assert.Equal(t, 0.0, s.Samples()[1].Derivative)
}

func TestNewFromArrays(t *testing.T) {
	s := signal.NewFromArrays([]float64{0, 1, 3}, []float64{0, 2, 2})
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 2.0, s.Samples()[0].Derivative) // (2-0)/(1-0)
	assert.Equal(t, 0.0, s.Samples()[1].Derivative)  // (2-2)/(3-1)
	assert.Equal(t, 0.0, s.Samples()[2].Derivative)
	assert.Equal(t, 0.0, s.BeginTime)
	assert.Equal(t, 3.0, s.EndTime)
}

func TestResize_DegenerateCollapsesToEmpty(t *testing.T) {
	s := signal.NewFromArrays([]float64{0, 1, 2}, []float64{1, 2, 3})
	s.Resize(5, 3, 0)
	assert.True(t, s.Empty())
	assert.Equal(t, 0.0, s.BeginTime)
	assert.Equal(t, 0.0, s.EndTime)
}

func TestResize_Idempotent(t *testing.T) {
	s := signal.NewFromArrays([]float64{0, 1, 2}, []float64{1, 2, 3})
	s.Resize(0.5, 1.5, -1)
	first := append([]signal.Sample(nil), s.Samples()...)

	s.Resize(0.5, 1.5, -1)
	assert.Equal(t, first, s.Samples())
}

func TestResize_ExtendsWithDefault(t *testing.T) {
	s := signal.New(0, 5)
	s.Resize(0, 10, -1)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, -1.0, s.Back().Value)
	assert.Equal(t, 10.0, s.EndTime)
}

func TestShift_Composes(t *testing.T) {
	s1 := signal.NewFromArrays([]float64{0, 1, 2}, []float64{1, 2, 3})
	s2 := signal.NewFromArrays([]float64{0, 1, 2}, []float64{1, 2, 3})

	s1.Shift(1)
	s1.Shift(2)

	s2.Shift(3)

	assert.Equal(t, s2.BeginTime, s1.BeginTime)
	assert.Equal(t, s2.EndTime, s1.EndTime)
	assert.Equal(t, s2.Samples(), s1.Samples())
}

func TestSimplify_EndsAtEndTime(t *testing.T) {
	s := signal.New(0, 1)
	s.EndTime = 10
	s.Simplify()
	assert.Equal(t, 10.0, s.Back().Time)
	assert.Equal(t, s.EndTime, s.Back().Time)
}

func TestGetValue_LeftNeighbourLookup(t *testing.T) {
	s := signal.NewFromArrays([]float64{0, 2, 4}, []float64{10, 20, 30})

	assert.Equal(t, 20.0, s.GetValue(2, 0)) // exact match
	assert.Equal(t, 10.0, s.GetValue(1, 0)) // left-neighbour, not interpolated
	assert.Equal(t, 30.0, s.GetValue(4, 0))
	assert.Equal(t, signal.TOP, s.GetValue(-1, 1))
	assert.Equal(t, signal.BOTTOM, s.GetValue(-1, -1))
}

func TestAnd_PointwiseMin(t *testing.T) {
	a := signal.NewFromArrays([]float64{0, 2}, []float64{1, 1})
	b := signal.NewFromArrays([]float64{0, 2}, []float64{3, -1})

	and := signal.And(a, b)
	// a is constant 1, b falls from 3 to -1 crossing 1 at t=1.
	assert.InDelta(t, 1.0, and.GetValue(0, 0), 1e-9)
	assert.InDelta(t, -1.0, and.GetValue(2, 0), 1e-9)
	assert.Equal(t, 2.0, and.EndTime)
}

func TestOr_PointwiseMax(t *testing.T) {
	a := signal.NewFromArrays([]float64{0, 2}, []float64{1, 1})
	b := signal.NewFromArrays([]float64{0, 2}, []float64{3, -1})

	or := signal.Or(a, b)
	assert.InDelta(t, 3.0, or.GetValue(0, 0), 1e-9)
	assert.InDelta(t, 1.0, or.GetValue(2, 0), 1e-9)
}

func TestNot_DoubleNegationIsIdentity(t *testing.T) {
	a := signal.NewFromArrays([]float64{0, 1, 2}, []float64{1, -2, 3})
	nn := signal.Not(signal.Not(a))

	require.Equal(t, a.Len(), nn.Len())
	for i, sm := range a.Samples() {
		assert.InDelta(t, sm.Value, nn.Samples()[i].Value, 1e-9)
	}
}

func TestTimedGlobally_ConstantPositive(t *testing.T) {
	x := signal.NewFromArrays([]float64{0, 1, 2, 3, 4}, []float64{1, 1, 1, 1, 1})
	g := signal.TimedGlobally(x, 0, 1)
	assert.InDelta(t, 1.0, g.GetValue(0, 0), 1e-9)
	assert.InDelta(t, 1.0, g.GetValue(2, 0), 1e-9)
}

func TestTimedEventually_FindsPeak(t *testing.T) {
	x := signal.NewFromArrays([]float64{0, 1, 2, 3, 4}, []float64{0, 0, 5, 0, 0})
	ev := signal.TimedEventually(x, 0, 2)
	assert.InDelta(t, 5.0, ev.GetValue(0, 0), 1e-9)
}
