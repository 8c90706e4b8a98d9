// Package transducer implements the STL formula tree: a recursive structure
// where every node — atomic predicate, Boolean connective, or timed temporal
// operator — exposes the same four evaluators (ComputeUpperRob,
// ComputeLowerRob, CausationUpper, CausationLower), each producing a
// *signal.Signal whose first sample is the scalar bound returned to the
// caller.
//
// Per SPEC_FULL.md's re-architecture of the source monitor's virtual-dispatch
// hierarchy, Node is a single tagged-variant struct (Kind selects behavior)
// rather than a family of types behind an interface: the set of STL
// operators this monitor supports is closed (Atom, And, Or, Not, Eventually,
// Always), so a switch on Kind makes that closure explicit instead of leaving
// it open to arbitrary new implementors.
//
// A tree is strictly owned top-down: a node's Left/Right children are not
// shared with any other node, and the tree holds a single non-owning pointer
// to the trace buffer it reads from. Atom nodes Reset their output signals
// in place at each evaluation; every other node replaces its output and
// scratch signals (cauUpL/cauUpR/cauLowL/cauLowR/cauM/zM) with the fresh
// Signals returned by the signal algebra and then Resizes those.
package transducer
