// Package driver wires stlparse, transducer, and trace together into the
// single online-evaluation entry point a host (CLI, test, or embedding
// program) calls per SPEC_FULL.md §6: parse a formula once, set its
// horizon, then feed trace rows one at a time and collect the
// causation-optimized (upper, lower) bound at each step.
package driver
