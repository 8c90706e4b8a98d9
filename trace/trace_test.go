package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/trace"
)

func TestAppend_RejectsNonMonotonicTime(t *testing.T) {
	tr := trace.New()
	require.NoError(t, tr.Append([]float64{0, 1}))
	require.NoError(t, tr.Append([]float64{1, 2}))

	err := tr.Append([]float64{1, 3})
	assert.ErrorIs(t, err, trace.ErrNonMonotonicTime)
	assert.Equal(t, 2, tr.Size())
}

func TestColumnIndex(t *testing.T) {
	names := []string{"x", "y"}
	idx, ok := trace.ColumnIndex(names, "y")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = trace.ColumnIndex(names, "z")
	assert.False(t, ok)
}

func TestLast(t *testing.T) {
	tr := trace.New()
	require.NoError(t, tr.Append([]float64{0, 5}))
	require.NoError(t, tr.Append([]float64{1, 7}))
	assert.Equal(t, []float64{1, 7}, tr.Last())
}
