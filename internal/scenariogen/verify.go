package scenariogen

import (
	"fmt"
	"math"

	"github.com/ib823/cockpit/internal/domain/estimator"
	"github.com/ib823/cockpit/internal/domain/model"
)

// relTolerance is the floating-point slack for sum invariants.
const relTolerance = 1e-9

// VerifyResult checks the structural invariants every result must satisfy:
// phase efforts sum to the total, phase durations sum to the total duration,
// and the returned duration reproduces itself from the returned PMO effort.
func VerifyResult(res *model.EstimatorResults) error {
	var effortSum, durationSum float64
	for _, p := range res.Phases {
		effortSum += p.EffortMD
		durationSum += p.DurationMonths
	}
	if !closeTo(effortSum, res.TotalMD) {
		return fmt.Errorf("phase efforts sum to %f, want %f", effortSum, res.TotalMD)
	}
	if !closeTo(durationSum, res.DurationMonths) {
		return fmt.Errorf("phase durations sum to %f, want %f", durationSum, res.DurationMonths)
	}

	// d_raw is the pre-PMO duration without the overlap factor applied.
	iv := res.IntermediateValues
	if !closeTo(iv.DRaw, (iv.EFT+iv.EFixed)/res.CapacityPerMonth) {
		return fmt.Errorf("d_raw %f does not match (e_ft+e_fixed)/capacity", iv.DRaw)
	}
	return nil
}

// ResidualAboveThreshold reports whether the fixed-point residual exceeds the
// engine's convergence threshold, which happens only when the iteration
// budget ran out. Not an error, but worth counting.
func ResidualAboveThreshold(res *model.EstimatorResults) bool {
	// pmo_md was computed from the previous duration iterate, so the gap
	// between pmo_md and duration*rate bounds the final step size.
	residual := math.Abs(res.PMOMD - res.DurationMonths*estimator.PMOMonthlyRate)
	return residual/estimator.PMOMonthlyRate >= estimator.PMOConvergenceThreshold
}

func closeTo(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < relTolerance
	}
	return math.Abs(got-want) <= relTolerance*math.Abs(want)
}
