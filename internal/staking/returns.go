package staking

import (
	"math"
)

// ReturnsProjection is the computed outcome of staking a SOL amount at a
// given APY over a horizon. APY and ROI are percentages; the compounding
// math inside CalculateReturns works on the decimal fraction.
type ReturnsProjection struct {
	InitialSOL float64
	APYPercent float64
	Days       int

	FinalSOL  float64
	EarnedSOL float64

	CurrentValueUSD float64
	// ProjectedValueUSD prices the future balance at *today's* spot price.
	// A modeling simplification, not a price forecast.
	ProjectedValueUSD float64

	ROIPercent float64
}

// CalculateReturns compounds amount daily at apyPercent over days and values
// both ends at priceUSD. Pure and deterministic - the price is supplied by
// the caller, never fetched here.
//
// A zero amount returns ErrZeroPrincipal since ROI would divide by zero.
// Negative APY values are accepted and model a loss scenario.
func CalculateReturns(amount, apyPercent float64, days int, priceUSD float64) (ReturnsProjection, error) {
	if amount == 0 {
		return ReturnsProjection{}, ErrZeroPrincipal
	}

	rate := apyPercent / 100
	years := float64(days) / 365

	// A = P(1 + r/n)^(nt) with n fixed at daily compounding
	final := amount * math.Pow(1+rate/CompoundsPerYear, CompoundsPerYear*years)
	earned := final - amount

	return ReturnsProjection{
		InitialSOL:        amount,
		APYPercent:        apyPercent,
		Days:              days,
		FinalSOL:          final,
		EarnedSOL:         earned,
		CurrentValueUSD:   amount * priceUSD,
		ProjectedValueUSD: final * priceUSD,
		ROIPercent:        earned / amount * 100,
	}, nil
}
