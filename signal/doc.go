// Package signal implements the piecewise-linear signal container used by
// online Signal Temporal Logic monitoring: a time-stamped sequence of
// breakpoints, each carrying the slope that holds until the next breakpoint,
// together with the pointwise Boolean/temporal algebra (And, Or, Not,
// TimedEventually, TimedGlobally) that STL robustness computations are built
// from.
//
// A Signal is mutated only through Append*, Resize, Shift, RemoveInf, Reset
// and Simplify; every other operation (And, Or, Not, TimedEventually,
// TimedGlobally) returns a freshly constructed Signal. Two sentinel values,
// TOP and BOTTOM, stand in for +Inf/-Inf and are used throughout as default
// fill values when a bound genuinely has no better answer yet.
//
// Signal carries no notion of "formula" or "robustness" — those live in
// package transducer, which composes Signals according to the STL operator
// tree. This package only knows about breakpoints, time windows, and the five
// algebra primitives.
package signal
