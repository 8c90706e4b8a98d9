package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/driver"
	"github.com/katalvlaran/stlmon/signal"
)

func TestEvaluate_ArityErrorOnEmptyData(t *testing.T) {
	_, _, err := driver.Evaluate("x", "x > 0", nil, [2]float64{0, 10}, nil)
	require.ErrorIs(t, err, driver.ErrArity)
}

func TestEvaluate_ArityErrorOnMissingFormula(t *testing.T) {
	data := [][]float64{{0, 1, 2}, {1, 1, 1}}
	_, _, err := driver.Evaluate("x", "", data, [2]float64{0, 10}, nil)
	require.ErrorIs(t, err, driver.ErrArity)
}

func TestEvaluate_ParseErrorWraps(t *testing.T) {
	data := [][]float64{{0, 1, 2}, {1, 1, 1}}
	_, _, err := driver.Evaluate("x", "x >>> 0", data, [2]float64{0, 10}, nil)
	require.ErrorIs(t, err, driver.ErrParse)
}

func TestEvaluate_SimpleAtomStream(t *testing.T) {
	// row 0: timestamps; row 1: signal x.
	data := [][]float64{
		{0, 1, 2, 3},
		{2, 2, 2, 2},
	}
	upper, lower, err := driver.Evaluate("x", "x > 1", data, [2]float64{0, 10}, nil)
	require.NoError(t, err)
	require.Len(t, upper, 4)
	require.Len(t, lower, 4)
	for i := range upper {
		assert.GreaterOrEqual(t, upper[i], lower[i])
		// An atom's bound is the first sample of its signal, which is
		// always the TOP fill at the start of the horizon.
		assert.Equal(t, signal.TOP, upper[i])
	}
}

func TestDriver_StepwiseUse(t *testing.T) {
	d, err := driver.New("x,y", "x > 0 and y < 5", [2]float64{0, 10}, nil)
	require.NoError(t, err)

	u1, l1, err := d.Step([]float64{0, 1, 3})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, u1, l1)

	u2, l2, err := d.Step([]float64{1, 1, 3})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, u2, l2)
}

func TestDriver_NamedIntervalParameterFallsBackSilently(t *testing.T) {
	symtab := map[string]float64{"knownBound": 2}
	d, err := driver.New("x", "ev_[0,unknownBound] x > 0", [2]float64{0, 10}, symtab)
	require.NoError(t, err)

	_, _, err = d.Step([]float64{0, 1})
	require.NoError(t, err)
}
