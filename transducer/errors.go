package transducer

import "errors"

// ErrUnknownKind is panicked as a typed error wrapper when a Node carries a
// Kind outside the closed set this package switches over — a programmer
// error in tree construction, never a reachable user-facing failure.
var ErrUnknownKind = errors.New("transducer: unknown node kind")
