package staking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakeseer/solstake/internal/staking"
)

func TestCalculateAPY(t *testing.T) {
	testCases := []struct {
		name       string
		inflation  float64
		commission staking.Commission
		expected   float64
	}{
		{"no commission", 0.08, staking.CommissionFromFraction(0), 10.0},
		{"10% commission", 0.08, staking.CommissionFromFraction(0.10), 9.0},
		{"5% commission", 0.08, staking.CommissionFromFraction(0.05), 9.5},
		{"percent constructor matches fraction", 0.08, staking.CommissionFromPercent(5), 9.5},
		// garbage in, garbage out: no clamping on nonsensical inputs
		{"commission above 100% inverts", 0.08, staking.CommissionFromFraction(1.5), -5.0},
		{"negative inflation propagates", -0.08, staking.CommissionFromFraction(0), -10.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, staking.CalculateAPY(tc.inflation, tc.commission), 1e-9)
		})
	}
}

func TestDefaultScenariosBracketCommissions(t *testing.T) {
	scenarios := staking.DefaultScenarios()
	assert.Len(t, scenarios, 3)

	byName := map[string]staking.Scenario{}
	for _, sc := range scenarios {
		byName[sc.Name] = sc
	}
	// the low return estimate assumes the highest commission tier
	assert.InDelta(t, 10.0, byName["low"].Commission.Percent(), 1e-9)
	assert.InDelta(t, 5.0, byName["average"].Commission.Percent(), 1e-9)
	assert.InDelta(t, 0.0, byName["high"].Commission.Percent(), 1e-9)
}
