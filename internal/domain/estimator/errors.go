package estimator

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNonPositiveCapacity = errors.New("capacity must be positive")
)
