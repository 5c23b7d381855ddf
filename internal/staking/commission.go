package staking

// Commission is a validator's cut of staking rewards. Data sources disagree
// on units - Solscan serves percentage points (0-100) while the inflation
// math wants a plain fraction - so raw values are normalized into this type
// once at ingestion and converted explicitly at each use site.
//
// The underlying value is the fraction. No range clamping is performed;
// a commission above 100% flows through the math as-is.
type Commission float64

func CommissionFromFraction(f float64) Commission {
	return Commission(f)
}

func CommissionFromPercent(p float64) Commission {
	return Commission(p / 100)
}

// Fraction returns the commission as a fraction (0.05 for 5%).
func (c Commission) Fraction() float64 {
	return float64(c)
}

// Percent returns the commission in percentage points (5 for 5%).
func (c Commission) Percent() float64 {
	return float64(c) * 100
}
