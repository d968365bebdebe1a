package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/ib823/cockpit/internal/scenariogen"
	"github.com/ib823/cockpit/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumScenarios = 1000
	defaultBatchSize    = 100
	defaultTimeout      = 30 * time.Second
	defaultRunTimeout   = 10 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:9080", "Base URL of the service")
		scenarios = flag.Int("scenarios", defaultNumScenarios, "Number of scenarios to generate and submit")
		batchSize = flag.Int("batch", defaultBatchSize, "Scenarios per batch request")
		workers   = flag.Int("workers", runtime.NumCPU()*2, "Number of concurrent submitters")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose   = flag.Bool("verbose", false, "Log every successful estimate")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &scenariogen.Config{
		BaseURL:      *baseURL,
		NumScenarios: *scenarios,
		BatchSize:    *batchSize,
		Workers:      *workers,
		Timeout:      *timeout,
		Verbose:      *verbose,
	}

	if err := scenariogen.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("scenario run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
