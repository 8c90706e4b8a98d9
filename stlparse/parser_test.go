package stlparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/stlparse"
	"github.com/katalvlaran/stlmon/transducer"
)

func TestParse_SimpleAtom(t *testing.T) {
	names, root, err := stlparse.Parse("signal x\nphi := x > 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names)
	assert.Equal(t, transducer.KindAtom, root.Kind)
}

func TestParse_AndOrPrecedence(t *testing.T) {
	// "and" binds tighter than "or": a or b and c == a or (b and c)
	_, root, err := stlparse.Parse("signal x, y, z\nphi := x > 0 or y > 0 and z > 0")
	require.NoError(t, err)
	require.Equal(t, transducer.KindOr, root.Kind)
	assert.Equal(t, transducer.KindAtom, root.Left.Kind)
	require.Equal(t, transducer.KindAnd, root.Right.Kind)
}

func TestParse_NotAndParens(t *testing.T) {
	_, root, err := stlparse.Parse("signal x, y\nphi := not (x > 0 and y > 0)")
	require.NoError(t, err)
	require.Equal(t, transducer.KindNot, root.Kind)
	require.Equal(t, transducer.KindAnd, root.Left.Kind)
}

func TestParse_TemporalWithLiteralBounds(t *testing.T) {
	_, root, err := stlparse.Parse("signal x\nphi := ev_[0,5] x > 1")
	require.NoError(t, err)
	require.Equal(t, transducer.KindEventually, root.Kind)
	assert.Equal(t, 0.0, root.A)
	assert.Equal(t, 5.0, root.B)
	assert.Equal(t, transducer.KindAtom, root.Left.Kind)
}

func TestParse_TemporalWithNamedBound(t *testing.T) {
	_, root, err := stlparse.Parse("signal x\nphi := alw_[0,horizonEnd] x < 10")
	require.NoError(t, err)
	require.Equal(t, transducer.KindAlways, root.Kind)
	assert.Equal(t, "horizonEnd", root.BParam)
}

func TestParse_AtomAgainstAnotherSignal(t *testing.T) {
	_, root, err := stlparse.Parse("signal x, y\nphi := x > y")
	require.NoError(t, err)
	assert.True(t, root.RHS.IsColumn)
	assert.Equal(t, 2, root.RHS.Column)
}

func TestParse_UnknownSignalIsError(t *testing.T) {
	_, _, err := stlparse.Parse("signal x\nphi := q > 0")
	require.Error(t, err)
	assert.ErrorIs(t, err, stlparse.ErrParse)
}

func TestParse_TrailingGarbageIsError(t *testing.T) {
	_, _, err := stlparse.Parse("signal x\nphi := x > 0 x")
	require.Error(t, err)
	assert.ErrorIs(t, err, stlparse.ErrParse)
}

func TestParse_MissingPhiIsError(t *testing.T) {
	_, _, err := stlparse.Parse("signal x\nx > 0")
	require.Error(t, err)
	assert.ErrorIs(t, err, stlparse.ErrParse)
}
