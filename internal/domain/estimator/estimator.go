// Package estimator implements the effort estimation engine: multiplicative
// base-effort composition, the PMO fixed-point iteration, and distribution of
// the total across delivery phases.
package estimator

import (
	"context"
	"math"

	"github.com/ib823/cockpit/internal/domain/coeff"
	"github.com/ib823/cockpit/internal/domain/model"
)

// Engine defaults.
const (
	WorkingDaysPerMonth     = 20.0
	PMOMonthlyRate          = 10.0
	MaxPMOIterations        = 10
	PMOConvergenceThreshold = 0.01
)

// Engine computes estimates. It carries policy only (phase plan, PMO rate,
// iteration bounds); every call is self-contained, so a single Engine is safe
// for concurrent use.
type Engine struct {
	phasePlan     []PhaseWeight
	pmoRate       float64
	maxIterations int
	threshold     float64
	observer      func(iterations int, converged bool)
}

// New creates an Engine with default policy, adjusted by options.
func New(opts ...Option) *Engine {
	e := &Engine{
		phasePlan:     DefaultPhasePlan(),
		pmoRate:       PMOMonthlyRate,
		maxIterations: MaxPMOIterations,
		threshold:     PMOConvergenceThreshold,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Estimate computes one scenario. It fails only when monthly capacity is not
// strictly positive; every other input magnitude is accepted.
func (e *Engine) Estimate(ctx context.Context, in *model.EstimatorInputs) (*model.EstimatorResults, error) {
	cs := coeff.FromInputs(in)

	// Each complexity dimension inflates base effort independently.
	eFT := in.Profile.BaseFT * (1 + cs.Sb) * (1 + cs.Pc) * (1 + cs.Os)
	eFixed := in.Profile.Basis + in.Profile.SecurityAuth

	capacity := in.FTE * WorkingDaysPerMonth * in.Utilization
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	// PMO cost is a function of duration, and duration a function of total
	// effort including PMO. Resolve by plain substitution starting from the
	// PMO-free duration. If the loop exhausts its budget the last iterate is
	// accepted as-is.
	d := ((eFT + eFixed) / capacity) * in.OverlapFactor
	ePMO := 0.0
	iterations := 0
	converged := false
	for i := 0; i < e.maxIterations; i++ {
		dPrev := d
		ePMO = d * e.pmoRate
		d = ((eFT + eFixed + ePMO) / capacity) * in.OverlapFactor
		iterations = i + 1
		if math.Abs(d-dPrev) < e.threshold {
			converged = true
			break
		}
	}
	if e.observer != nil {
		e.observer(iterations, converged)
	}

	totalMD := eFT + eFixed + ePMO

	phases := make([]model.PhaseBreakdown, len(e.phasePlan))
	for i, pw := range e.phasePlan {
		phases[i] = model.PhaseBreakdown{
			PhaseName:      pw.Name,
			EffortMD:       totalMD * pw.Weight,
			DurationMonths: d * pw.Weight,
		}
	}

	return &model.EstimatorResults{
		TotalMD:          totalMD,
		DurationMonths:   d,
		PMOMD:            ePMO,
		Phases:           phases,
		CapacityPerMonth: capacity,
		Coefficients:     cs,
		IntermediateValues: model.IntermediateValues{
			EFT:    eFT,
			EFixed: eFixed,
			DRaw:   (eFT + eFixed) / capacity,
		},
	}, nil
}

// EstimateBatch applies Estimate to each scenario independently. Scenarios
// with non-positive capacity are omitted from the output; surviving results
// keep their input order.
func (e *Engine) EstimateBatch(ctx context.Context, inputs []model.EstimatorInputs) []model.EstimatorResults {
	results := make([]model.EstimatorResults, 0, len(inputs))
	for i := range inputs {
		res, err := e.Estimate(ctx, &inputs[i])
		if err != nil {
			continue
		}
		results = append(results, *res)
	}
	return results
}
