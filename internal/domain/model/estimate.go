// Package model contains domain records passed between layers.
package model

// ExcludedTier marks scope items that do not count toward scope breadth.
const ExcludedTier = "D"

// ScopeItem is one selectable unit of functional scope from the L3 catalog.
// Fields mirror the wire schema for estimate requests.
type ScopeItem struct {
	L3Code      string  `json:"l3_code" koanf:"l3_code"`
	Coefficient float64 `json:"coefficient" koanf:"coefficient"`
	DefaultTier string  `json:"default_tier" koanf:"default_tier"`
}

// Counted reports whether the item contributes to scope breadth.
func (s ScopeItem) Counted() bool {
	return s.DefaultTier != ExcludedTier
}

// Profile is a named team-capability profile with base effort quantities,
// all expressed in person-days.
type Profile struct {
	Name         string  `json:"name" koanf:"name"`
	BaseFT       float64 `json:"base_ft" koanf:"base_ft"`
	Basis        float64 `json:"basis" koanf:"basis"`
	SecurityAuth float64 `json:"security_auth" koanf:"security_auth"`
}

// EstimatorInputs is the full input record for one estimation scenario.
type EstimatorInputs struct {
	SelectedL3Items []ScopeItem `json:"selected_l3_items"`
	Integrations    int         `json:"integrations"`
	CustomForms     int         `json:"custom_forms"`
	FitToStandard   float64     `json:"fit_to_standard"`
	LegalEntities   int         `json:"legal_entities"`
	Countries       int         `json:"countries"`
	Languages       int         `json:"languages"`
	Profile         Profile     `json:"profile"`
	FTE             float64     `json:"fte"`
	Utilization     float64     `json:"utilization"`
	OverlapFactor   float64     `json:"overlap_factor"`
}

// Coefficients are the derived complexity multipliers. Each is >= 0.
type Coefficients struct {
	Sb float64 `json:"sb"` // scope breadth
	Pc float64 `json:"pc"` // process complexity
	Os float64 `json:"os"` // organizational scale
}

// IntermediateValues is a diagnostic snapshot kept for traceability. DRaw is
// the pre-PMO duration without the overlap factor applied.
type IntermediateValues struct {
	EFT    float64 `json:"e_ft"`
	EFixed float64 `json:"e_fixed"`
	DRaw   float64 `json:"d_raw"`
}

// PhaseBreakdown is one delivery phase's share of effort and duration.
type PhaseBreakdown struct {
	PhaseName      string  `json:"phase_name"`
	EffortMD       float64 `json:"effort_md"`
	DurationMonths float64 `json:"duration_months"`
}

// EstimatorResults is the complete output record for one scenario.
type EstimatorResults struct {
	TotalMD            float64            `json:"total_md"`
	DurationMonths     float64            `json:"duration_months"`
	PMOMD              float64            `json:"pmo_md"`
	Phases             []PhaseBreakdown   `json:"phases"`
	CapacityPerMonth   float64            `json:"capacity_per_month"`
	Coefficients       Coefficients       `json:"coefficients"`
	IntermediateValues IntermediateValues `json:"intermediate_values"`
}
