// Package coeff derives the dimensionless complexity multipliers consumed by
// the estimation engine. All functions are pure; aggregates are clamped so a
// multiplier is never negative regardless of input.
package coeff

import (
	"math"

	"github.com/ib823/cockpit/internal/domain/model"
)

// Formula constants.
const (
	IntegrationFactor = 0.02
	ExtraFormFactor   = 0.01
	FitGapFactor      = 0.25
	EntityFactor      = 0.03
	CountryFactor     = 0.05
	LanguageFactor    = 0.02
	BaselineForms     = 10
)

// ScopeBreadth sums the coefficients of selected, non-excluded scope items
// plus a per-integration surcharge.
func ScopeBreadth(items []model.ScopeItem, integrations int) float64 {
	var sum float64
	for _, item := range items {
		if !item.Counted() {
			continue
		}
		sum += item.Coefficient
	}
	return math.Max(0, sum+float64(integrations)*IntegrationFactor)
}

// ProcessComplexity combines the custom-form count above the baseline with
// the gap to full fit-to-standard adoption.
func ProcessComplexity(customForms int, fitToStandard float64) float64 {
	extraForms := customForms - BaselineForms
	if extraForms < 0 {
		extraForms = 0
	}
	fitGap := math.Max(0, 1-fitToStandard)
	return math.Max(0, float64(extraForms)*ExtraFormFactor+fitGap*FitGapFactor)
}

// OrgScale grows with every legal entity, country, and language beyond the
// first. Counts below one contribute nothing.
func OrgScale(legalEntities, countries, languages int) float64 {
	entities := math.Max(0, float64(legalEntities-1)) * EntityFactor
	countriesContrib := math.Max(0, float64(countries-1)) * CountryFactor
	languagesContrib := math.Max(0, float64(languages-1)) * LanguageFactor
	return math.Max(0, entities+countriesContrib+languagesContrib)
}

// FromInputs computes all three multipliers for one scenario.
func FromInputs(in *model.EstimatorInputs) model.Coefficients {
	return model.Coefficients{
		Sb: ScopeBreadth(in.SelectedL3Items, in.Integrations),
		Pc: ProcessComplexity(in.CustomForms, in.FitToStandard),
		Os: OrgScale(in.LegalEntities, in.Countries, in.Languages),
	}
}
