// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"

	"github.com/ib823/cockpit/internal/domain/model"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxBatchSize caps the number of scenarios accepted per batch request.
	MaxBatchSize int `koanf:"max_batch_size"`

	// BatchWorkerCount sets the number of concurrent scenario evaluators on
	// the batch path.
	BatchWorkerCount int `koanf:"batch_worker_count"`

	// CatalogItems seeds the L3 scope-item catalog.
	CatalogItems []model.ScopeItem `koanf:"catalog_items"`

	// Profiles seeds the named team profiles.
	Profiles []model.Profile `koanf:"profiles"`
}

// New creates a Config with defaults. The seeded catalog covers a small core
// scope; deployments extend it via the YAML config file.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		MaxBatchSize:     1000,
		BatchWorkerCount: runtime.NumCPU(),
		CatalogItems: []model.ScopeItem{
			{L3Code: "J58", Coefficient: 0.06, DefaultTier: "A"},
			{L3Code: "J59", Coefficient: 0.05, DefaultTier: "A"},
			{L3Code: "J60", Coefficient: 0.04, DefaultTier: "B"},
			{L3Code: "J62", Coefficient: 0.04, DefaultTier: "B"},
			{L3Code: "BD9", Coefficient: 0.05, DefaultTier: "A"},
			{L3Code: "BD3", Coefficient: 0.03, DefaultTier: "C"},
			{L3Code: "BFA", Coefficient: 0.02, DefaultTier: "C"},
			{L3Code: "1FS", Coefficient: 0.03, DefaultTier: "D"},
		},
		Profiles: []model.Profile{
			{Name: "baseline", BaseFT: 380, Basis: 60, SecurityAuth: 25},
			{Name: "midmarket", BaseFT: 520, Basis: 80, SecurityAuth: 35},
			{Name: "enterprise", BaseFT: 760, Basis: 110, SecurityAuth: 50},
		},
	}
}
