package scenariogen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ib823/cockpit/internal/domain/model"
	"github.com/ib823/cockpit/pkg/logger"
)

// Run generates scenarios, submits them concurrently over the single path,
// then replays them as batches, and reports what came back.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get().Named("scenariogen")
	stats := &Stats{}

	log.Info(ctx, "generating scenarios", logger.Int("count", cfg.NumScenarios))
	scenarios := Generate(cfg.NumScenarios)
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	start := time.Now()

	// Single-scenario path, fanned out over workers.
	work := make(chan *Scenario)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range work {
				submitOne(ctx, client, sc, stats, log, cfg.Verbose)
			}
		}()
	}
	for i := range scenarios {
		select {
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return fmt.Errorf("run canceled: %w", ctx.Err())
		case work <- &scenarios[i]:
		}
	}
	close(work)
	wg.Wait()

	// Batch path with the same scenarios.
	for lo := 0; lo < len(scenarios); lo += cfg.BatchSize {
		hi := lo + cfg.BatchSize
		if hi > len(scenarios) {
			hi = len(scenarios)
		}
		inputs := make([]model.EstimatorInputs, 0, hi-lo)
		for _, sc := range scenarios[lo:hi] {
			inputs = append(inputs, sc.Inputs)
		}
		results, err := client.EstimateBatch(ctx, inputs)
		if err != nil {
			stats.Failed.Add(1)
			log.Error(ctx, "batch submit failed", logger.Error(err))
			continue
		}
		if len(results) != len(inputs) {
			// All generated scenarios have positive capacity, so nothing
			// should have been dropped.
			stats.InvariantFails.Add(1)
			log.Error(ctx, "batch dropped scenarios unexpectedly",
				logger.Int("sent", len(inputs)),
				logger.Int("returned", len(results)),
			)
		}
	}

	elapsed := time.Since(start)
	log.Info(ctx, "scenario run complete",
		logger.Int("submitted", int(stats.Submitted.Load())),
		logger.Int("failed", int(stats.Failed.Load())),
		logger.Int("invariantFails", int(stats.InvariantFails.Load())),
		logger.Int("aboveThreshold", int(stats.AboveThreshold.Load())),
		logger.Duration("elapsed", elapsed),
	)

	if stats.InvariantFails.Load() > 0 {
		return fmt.Errorf("%d results violated invariants", stats.InvariantFails.Load())
	}
	return nil
}

func submitOne(ctx context.Context, client *Client, sc *Scenario, stats *Stats, log logger.Logger, verbose bool) {
	res, err := client.Estimate(ctx, &sc.Inputs)
	if err != nil {
		stats.Failed.Add(1)
		log.Error(ctx, "estimate failed", logger.String("scenario", sc.ID), logger.Error(err))
		return
	}
	stats.Submitted.Add(1)

	if err := VerifyResult(res); err != nil {
		stats.InvariantFails.Add(1)
		log.Error(ctx, "result violates invariants", logger.String("scenario", sc.ID), logger.Error(err))
		return
	}
	if ResidualAboveThreshold(res) {
		stats.AboveThreshold.Add(1)
	}
	if verbose {
		log.Info(ctx, "estimate ok",
			logger.String("scenario", sc.ID),
			logger.Float64("totalMD", res.TotalMD),
			logger.Float64("durationMonths", res.DurationMonths),
		)
	}
}
