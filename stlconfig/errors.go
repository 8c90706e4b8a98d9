package stlconfig

import "errors"

// Sentinel errors returned by Load.
var (
	// ErrInvalidConfig indicates the YAML document is missing a required
	// field or has a malformed horizon.
	ErrInvalidConfig = errors.New("stlconfig: invalid configuration")
)
