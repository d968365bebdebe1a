package catalog

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownItem    = errors.New("unknown scope item")
	ErrUnknownProfile = errors.New("unknown profile")
)
