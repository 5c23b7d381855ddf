package staking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakeseer/solstake/internal/staking"
)

func TestCommissionUnitConversions(t *testing.T) {
	c := staking.CommissionFromPercent(5)
	assert.InDelta(t, 0.05, c.Fraction(), 1e-12)
	assert.InDelta(t, 5.0, c.Percent(), 1e-12)

	c = staking.CommissionFromFraction(0.10)
	assert.InDelta(t, 0.10, c.Fraction(), 1e-12)
	assert.InDelta(t, 10.0, c.Percent(), 1e-12)

	// out-of-range values pass through untouched
	c = staking.CommissionFromPercent(150)
	assert.InDelta(t, 1.5, c.Fraction(), 1e-12)
}
