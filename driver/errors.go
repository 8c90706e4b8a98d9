package driver

import "errors"

// ErrArity is returned when Evaluate is called with fewer than the four
// logical arguments it needs: signal names, formula, trace data, horizon.
var ErrArity = errors.New("driver: signal names, formula, data and horizon are all required")

// ErrParse wraps a stlparse syntax error surfaced through Evaluate.
var ErrParse = errors.New("driver: formula parse error")
