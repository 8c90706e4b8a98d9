package stlparse

import "errors"

// ErrParse is the sentinel wrapped by every syntax error Parse returns.
var ErrParse = errors.New("stlparse: parse error")
