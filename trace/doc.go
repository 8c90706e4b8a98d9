// Package trace implements the append-only row buffer an online monitoring
// session reveals a signal trace through: each row is a real vector whose
// column 0 is a timestamp and whose remaining columns are signal values.
// Timestamps must strictly increase; the buffer never shrinks during a
// session. All transducer nodes hold a read-only reference to a single
// shared Trace; the driver is the session's sole writer, and it only
// appends between evaluation steps, so no locking is required
// (see SPEC_FULL.md, Concurrency & Resource Model).
package trace
