package estimator

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithPhasePlan replaces the default phase plan. The plan is copied so later
// mutation by the caller cannot affect the engine.
func WithPhasePlan(plan []PhaseWeight) Option {
	return func(e *Engine) {
		if len(plan) > 0 {
			e.phasePlan = append([]PhaseWeight(nil), plan...)
		}
	}
}

// WithPMORate sets the PMO cost per month of project duration.
func WithPMORate(rate float64) Option {
	return func(e *Engine) {
		if rate >= 0 {
			e.pmoRate = rate
		}
	}
}

// WithIterationBudget sets the maximum number of fixed-point rounds.
func WithIterationBudget(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIterations = n
		}
	}
}

// WithConvergenceThreshold sets the duration delta below which the
// fixed-point iteration stops early.
func WithConvergenceThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 {
			e.threshold = threshold
		}
	}
}

// WithObserver registers a callback invoked after every fixed-point run with
// the round count and whether the threshold was met.
func WithObserver(fn func(iterations int, converged bool)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}
