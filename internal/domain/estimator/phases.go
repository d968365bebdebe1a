package estimator

// PhaseWeight pairs a delivery phase with its share of total effort and
// duration. A plan's weights are expected to sum to 1.0.
type PhaseWeight struct {
	Name   string
	Weight float64
}

// DefaultPhasePlan returns the five delivery phases in execution order.
func DefaultPhasePlan() []PhaseWeight {
	return []PhaseWeight{
		{Name: "Prepare", Weight: 0.10},
		{Name: "Explore", Weight: 0.15},
		{Name: "Realize", Weight: 0.50},
		{Name: "Deploy", Weight: 0.15},
		{Name: "Run", Weight: 0.10},
	}
}
