package staking

// CalculateAPY derives the net annual staking yield, expressed as a
// percentage, from the network inflation rate (a fraction, e.g. 0.08 for 8%)
// and a validator commission.
//
// No bounds are enforced: a negative inflation rate or a commission above
// 100% propagates through the math unchanged.
func CalculateAPY(inflationRate float64, commission Commission) float64 {
	netInflation := inflationRate * (1 - commission.Fraction())
	return netInflation / StakeParticipationRate * 100
}
