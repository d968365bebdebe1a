package config

import "errors"

// Sentinel error kinds for this package. Load wraps every failure in one of
// these so callers can errors.Is on the category.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
