package staking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeseer/solstake/internal/staking"
)

func record(name string, commissionPct, apy, credit float64) staking.ValidatorRecord {
	commission := staking.CommissionFromPercent(commissionPct)
	return staking.ValidatorRecord{
		Name:        name,
		VotePubkey:  name + "-pubkey",
		Commission:  &commission,
		APYPercent:  &apy,
		CreditScore: &credit,
	}
}

func TestRankValidatorsScoreFormula(t *testing.T) {
	scored := staking.RankValidators([]staking.ValidatorRecord{record("a", 5, 8, 90)}, 1)
	require.Len(t, scored, 1)

	// 8*0.4 + (100-5)*0.3 + 90*0.3
	assert.InDelta(t, 58.7, scored[0].Score, 1e-9)
}

func TestRankValidatorsPrefersLowerCommission(t *testing.T) {
	records := []staking.ValidatorRecord{
		record("ten-pct", 10, 7.5, 80),
		record("zero-pct", 0, 7.5, 80),
	}

	scored := staking.RankValidators(records, 2)
	require.Len(t, scored, 2)

	assert.Equal(t, "zero-pct", scored[0].Name)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestRankValidatorsDropsIncompleteRecords(t *testing.T) {
	noCredit := record("no-credit", 5, 7.5, 0)
	noCredit.CreditScore = nil
	noAPY := record("no-apy", 5, 0, 80)
	noAPY.APYPercent = nil

	records := []staking.ValidatorRecord{
		noCredit,
		record("complete", 5, 7.5, 80),
		noAPY,
	}

	// topN far larger than eligible count returns just the eligible, no padding
	scored := staking.RankValidators(records, 10)
	require.Len(t, scored, 1)
	assert.Equal(t, "complete", scored[0].Name)
}

func TestRankValidatorsTruncatesToTopN(t *testing.T) {
	records := []staking.ValidatorRecord{
		record("a", 0, 9, 90),
		record("b", 5, 8, 85),
		record("c", 10, 7, 80),
	}

	scored := staking.RankValidators(records, 2)
	require.Len(t, scored, 2)
	assert.Equal(t, "a", scored[0].Name)
	assert.Equal(t, "b", scored[1].Name)

	assert.Empty(t, staking.RankValidators(records, 0))
}

func TestRankValidatorsStableOnTies(t *testing.T) {
	// identical inputs produce identical scores; input order must hold
	records := []staking.ValidatorRecord{
		record("first", 5, 7.5, 80),
		record("second", 5, 7.5, 80),
		record("third", 5, 7.5, 80),
	}

	scored := staking.RankValidators(records, 3)
	require.Len(t, scored, 3)
	assert.Equal(t, "first", scored[0].Name)
	assert.Equal(t, "second", scored[1].Name)
	assert.Equal(t, "third", scored[2].Name)
}

func TestRankValidatorsIdempotent(t *testing.T) {
	records := []staking.ValidatorRecord{
		record("b", 5, 8, 85),
		record("a", 0, 9, 90),
		record("c", 10, 7, 80),
	}
	snapshot := make([]staking.ValidatorRecord, len(records))
	copy(snapshot, records)

	first := staking.RankValidators(records, 3)
	second := staking.RankValidators(records, 3)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records, "input sequence must not be mutated")
}
