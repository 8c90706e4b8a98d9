package trace

// Trace is a growable, append-only sequence of rows. Row column 0 is the
// timestamp; columns >= 1 are signal values, in the order the signal names
// were declared when the monitor was built.
type Trace struct {
	rows [][]float64
}

// New returns an empty Trace.
func New() *Trace {
	return &Trace{}
}

// Append adds row to the end of the trace. Row must be non-empty and its
// timestamp (row[0]) must strictly exceed the previous row's, per the trace
// buffer invariant; violating that returns ErrNonMonotonicTime and leaves
// the trace unchanged.
func (tr *Trace) Append(row []float64) error {
	if len(tr.rows) > 0 && len(row) > 0 && row[0] <= tr.rows[len(tr.rows)-1][0] {
		return ErrNonMonotonicTime
	}
	tr.rows = append(tr.rows, row)
	return nil
}

// Size returns the number of rows currently stored.
func (tr *Trace) Size() int {
	return len(tr.rows)
}

// At returns row i (0-indexed). Panics if i is out of range, matching the
// unchecked random-access contract transducer nodes rely on when reading
// trace_data_ptr->at(...).
func (tr *Trace) At(i int) []float64 {
	return tr.rows[i]
}

// Last returns the most recently appended row. Panics if the trace is empty.
func (tr *Trace) Last() []float64 {
	return tr.rows[len(tr.rows)-1]
}

// ColumnIndex maps a declared signal name to its 1-based column (column 0 is
// always the timestamp).
func ColumnIndex(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}
