package scenariogen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/ib823/cockpit/internal/domain/model"
)

// Generation ranges. Capacity-related floors keep generated scenarios inside
// the regime where the PMO iteration contracts quickly, so result residuals
// are meaningful to check.
const (
	randomFloatDivisor = 1000000

	minScopeItems = 0
	maxScopeItems = 12

	maxIntegrations = 25
	maxCustomForms  = 40

	minFTE     = 2.0
	maxFTE     = 20.0
	minUtil    = 0.6
	maxUtil    = 1.0
	minOverlap = 0.7
	maxOverlap = 1.2

	minBaseFT = 150.0
	maxBaseFT = 900.0
)

// Scenario pairs generated inputs with an id used in logs and reports.
type Scenario struct {
	ID     string
	Inputs model.EstimatorInputs
}

// randomFloat returns a random float64 in [0.0, 1.0) using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func randomIn(low, high float64) float64 {
	return low + randomFloat()*(high-low)
}

func randomCount(max int) int {
	return int(randomFloat() * float64(max+1))
}

// Generate creates n randomized scenarios with unique ids.
func Generate(n int) []Scenario {
	scenarios := make([]Scenario, n)
	for i := range scenarios {
		scenarios[i] = Scenario{
			ID:     uuid.New().String(),
			Inputs: randomInputs(),
		}
	}
	return scenarios
}

func randomInputs() model.EstimatorInputs {
	numItems := minScopeItems + randomCount(maxScopeItems-minScopeItems)
	items := make([]model.ScopeItem, numItems)
	for i := range items {
		tier := "A"
		switch randomCount(3) {
		case 1:
			tier = "B"
		case 2:
			tier = "C"
		case 3:
			tier = model.ExcludedTier
		}
		items[i] = model.ScopeItem{
			L3Code:      fmt.Sprintf("GEN%02d", i),
			Coefficient: randomIn(0.01, 0.08),
			DefaultTier: tier,
		}
	}

	return model.EstimatorInputs{
		SelectedL3Items: items,
		Integrations:    randomCount(maxIntegrations),
		CustomForms:     randomCount(maxCustomForms),
		FitToStandard:   randomIn(0.5, 1.0),
		LegalEntities:   1 + randomCount(7),
		Countries:       1 + randomCount(5),
		Languages:       1 + randomCount(4),
		Profile: model.Profile{
			Name:         "generated",
			BaseFT:       randomIn(minBaseFT, maxBaseFT),
			Basis:        randomIn(30, 120),
			SecurityAuth: randomIn(10, 60),
		},
		FTE:           randomIn(minFTE, maxFTE),
		Utilization:   randomIn(minUtil, maxUtil),
		OverlapFactor: randomIn(minOverlap, maxOverlap),
	}
}
