package staking

// Scenario is a named commission tier used to bracket projected returns.
// Each scenario maps to its own APY and therefore its own projection;
// scenarios are independent of each other.
type Scenario struct {
	Name        string
	Description string
	Commission  Commission
}

// DefaultScenarios brackets typical validator commissions. Note the
// inversion: the "low" return estimate assumes the highest commission tier.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "low", Description: "High Commission of 10%", Commission: CommissionFromPercent(10)},
		{Name: "average", Description: "Average Commission of 5%", Commission: CommissionFromPercent(5)},
		{Name: "high", Description: "Low Commission of 0%", Commission: CommissionFromPercent(0)},
	}
}
