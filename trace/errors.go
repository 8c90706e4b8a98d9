package trace

import "errors"

// ErrNonMonotonicTime is returned by Append when the new row's timestamp
// does not strictly exceed the previous row's.
var ErrNonMonotonicTime = errors.New("trace: row timestamp must strictly increase")
