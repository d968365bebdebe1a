// Package service provides the core business service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/ib823/cockpit/internal/domain/catalog"
	"github.com/ib823/cockpit/internal/domain/estimator"
	"github.com/ib823/cockpit/internal/domain/model"
	"github.com/ib823/cockpit/pkg/logger"
	"github.com/ib823/cockpit/pkg/metrics"
)

// Service wires the estimation engine and scope catalog behind the API
// dependency surface.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine  *estimator.Engine
	catalog *catalog.Catalog

	// Configuration
	maxBatchSize  int
	batchWorkers  int
	catalogItems  []model.ScopeItem
	profiles      []model.Profile
	phasePlan     []estimator.PhaseWeight
	engineOptions []estimator.Option

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxBatchSize caps the number of scenarios per batch request.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// WithBatchWorkerCount sets the number of concurrent scenario evaluators on
// the batch path.
func WithBatchWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}

// WithCatalogItems seeds the L3 scope-item catalog.
func WithCatalogItems(items []model.ScopeItem) Option {
	return func(s *Service) {
		s.catalogItems = items
	}
}

// WithProfiles seeds the named team profiles.
func WithProfiles(profiles []model.Profile) Option {
	return func(s *Service) {
		s.profiles = profiles
	}
}

// WithPhasePlan replaces the default delivery-phase weighting.
func WithPhasePlan(plan []estimator.PhaseWeight) Option {
	return func(s *Service) {
		s.phasePlan = plan
	}
}

// WithEngineOptions forwards extra options to the estimation engine.
func WithEngineOptions(opts ...estimator.Option) Option {
	return func(s *Service) {
		s.engineOptions = append(s.engineOptions, opts...)
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxBatchSize: 1000,
		batchWorkers: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	engineOpts := []estimator.Option{
		estimator.WithObserver(metrics.RecordConvergence),
	}
	if len(s.phasePlan) > 0 {
		engineOpts = append(engineOpts, estimator.WithPhasePlan(s.phasePlan))
	}
	engineOpts = append(engineOpts, s.engineOptions...)
	s.engine = estimator.New(engineOpts...)

	s.catalog = catalog.New(
		catalog.WithItems(s.catalogItems),
		catalog.WithProfiles(s.profiles),
	)
	metrics.UpdateCatalogSize(s.catalog.ItemCount(), s.catalog.ProfileCount())

	s.started = true
	s.logger.Info(ctx, "estimation service started",
		logger.Int("maxBatchSize", s.maxBatchSize),
		logger.Int("batchWorkers", s.batchWorkers),
		logger.Int("catalogItems", s.catalog.ItemCount()),
		logger.Int("profiles", s.catalog.ProfileCount()),
	)

	return nil
}

// Stop shuts the service down. The service holds no background goroutines or
// persistent state, so this only flips the lifecycle flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "estimation service stopped")
}

// Estimate computes one scenario.
func (s *Service) Estimate(ctx context.Context, in *model.EstimatorInputs) (*model.EstimatorResults, error) {
	start := time.Now()
	res, err := s.engine.Estimate(ctx, in)
	metrics.RecordEstimateDuration(float64(time.Since(start).Microseconds()) / 1000.0)

	if err != nil {
		metrics.RecordCapacityError()
		return nil, err
	}

	metrics.RecordEstimateComputed()
	s.logger.Debug(ctx, "estimate computed",
		logger.Float64("totalMD", res.TotalMD),
		logger.Float64("durationMonths", res.DurationMonths),
		logger.Float64("pmoMD", res.PMOMD),
	)
	return res, nil
}

// EstimateBatch evaluates scenarios concurrently with a bounded worker pool.
// Scenarios with non-positive capacity are omitted; surviving results keep
// their input order.
func (s *Service) EstimateBatch(ctx context.Context, inputs []model.EstimatorInputs) []model.EstimatorResults {
	computed := make([]*model.EstimatorResults, len(inputs))

	workers := s.batchWorkers
	if workers > len(inputs) {
		workers = len(inputs)
	}

	var wg sync.WaitGroup
	indexes := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				res, err := s.engine.Estimate(ctx, &inputs[i])
				if err != nil {
					continue
				}
				computed[i] = res
			}
		}()
	}

	for i := range inputs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	// Compact in input order; a nil slot is a dropped scenario.
	results := make([]model.EstimatorResults, 0, len(inputs))
	for _, res := range computed {
		if res == nil {
			continue
		}
		results = append(results, *res)
	}

	dropped := len(inputs) - len(results)
	metrics.RecordBatch(len(inputs), dropped)
	if dropped > 0 {
		s.logger.Debug(ctx, "batch scenarios dropped for non-positive capacity",
			logger.Int("received", len(inputs)),
			logger.Int("dropped", dropped),
		)
	}

	return results
}

// ResolveScope maps L3 codes to their catalog entries.
func (s *Service) ResolveScope(ctx context.Context, codes []string) ([]model.ScopeItem, error) {
	return s.catalog.ResolveItems(ctx, codes)
}

// ResolveProfile maps a profile name to its catalog entry.
func (s *Service) ResolveProfile(ctx context.Context, name string) (model.Profile, error) {
	return s.catalog.ResolveProfile(ctx, name)
}

// MaxBatchSize returns the configured batch cap.
func (s *Service) MaxBatchSize() int {
	return s.maxBatchSize
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"maxBatchSize": s.maxBatchSize,
		"batchWorkers": s.batchWorkers,
	}

	if s.started {
		stats["catalogItems"] = s.catalog.ItemCount()
		stats["profiles"] = s.catalog.ProfileCount()
	}

	return stats
}
