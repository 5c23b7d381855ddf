package staking

const (
	// StakeParticipationRate is the protocol's target share of total supply
	// actively staked (~80%). Net inflation is divided by it when estimating
	// yield: if fewer tokens are staked, each staked token receives a
	// proportionally larger share of emissions.
	StakeParticipationRate = 0.8

	// CompoundsPerYear fixes the compounding frequency at daily, regardless
	// of the granularity of the projection horizon.
	CompoundsPerYear = 365

	// Validator scoring weights. Fixed, deliberately not tunable.
	WeightAPY        = 0.4
	WeightCommission = 0.3
	WeightCredit     = 0.3
)
