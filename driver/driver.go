package driver

import (
	"fmt"

	"github.com/katalvlaran/stlmon/stlparse"
	"github.com/katalvlaran/stlmon/trace"
	"github.com/katalvlaran/stlmon/transducer"
)

// Driver holds a built formula tree and its trace buffer across a sequence
// of Step calls. It is the unit of state New/Evaluate build once per
// monitoring session: its results depend only on the formula, the horizon
// and the trace, with the trace accumulated incrementally instead of
// supplied all at once.
type Driver struct {
	Names []string
	root  *transducer.Node
	tr    *trace.Trace
}

// New parses signalNames ("x,y,z"-style comma list) and formula (the "phi"
// expression, without the "signal ..." header) into a transducer tree, sets
// its horizon, and attaches a fresh trace buffer and symbol table.
func New(signalNames, formula string, horizon [2]float64, symtab map[string]float64) (*Driver, error) {
	if signalNames == "" || formula == "" {
		return nil, ErrArity
	}

	program := "signal " + signalNames + "\nphi := " + formula
	names, root, err := stlparse.Parse(program)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root.SetHorizon(horizon[0], horizon[1])
	root.SetDuration()
	tr := trace.New()
	root.SetTraceDataPtr(tr, symtab)

	return &Driver{Names: names, root: root, tr: tr}, nil
}

// Step appends one trace row (column 0 = timestamp, columns >= 1 = signal
// values in declaration order) and returns the causation-optimized
// (upper, lower) robustness bound after it.
func (d *Driver) Step(row []float64) (upper, lower float64, err error) {
	if err := d.tr.Append(row); err != nil {
		return 0, 0, err
	}
	return d.root.CausationUpper(), d.root.CausationLower(), nil
}

// DebugString renders the root node's scratch/output signals, forwarding to
// transducer.Node.DebugString for CLI --verbose use; child nodes are not
// included.
func (d *Driver) DebugString() string {
	return d.root.DebugString()
}

// Evaluate implements the batch entry point of SPEC_FULL.md §6: parse
// (signalNames, formula) once, then feed data column by column — data is
// laid out row-major with row 0 the timestamp row and rows 1..m-1 the
// declared signals, column j the sample at time step j, matching the
// source monitor's matrix[m×n] convention. Returns ErrArity if any of
// signalNames, formula, data, or horizon is missing, and ErrParse (wrapping
// the stlparse failure) if the formula fails to parse. Both abort with no
// partial output.
func Evaluate(signalNames, formula string, data [][]float64, horizon [2]float64, symtab map[string]float64) (upper, lower []float64, err error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, nil, ErrArity
	}

	d, err := New(signalNames, formula, horizon, symtab)
	if err != nil {
		return nil, nil, err
	}

	m := len(data)
	n := len(data[0])
	upper = make([]float64, n)
	lower = make([]float64, n)

	row := make([]float64, m)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			row[i] = data[i][j]
		}
		u, l, stepErr := d.Step(append([]float64(nil), row...))
		if stepErr != nil {
			return nil, nil, stepErr
		}
		upper[j] = u
		lower[j] = l
	}
	return upper, lower, nil
}
