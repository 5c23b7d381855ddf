package staking

import (
	"sort"
)

// ValidatorRecord is a validator as ingested from the validator source.
// Commission, APYPercent and CreditScore are pointers because the upstream
// API omits fields or serves non-numeric junk for some validators; a nil
// field means the value was absent or failed numeric coercion, and makes
// the record ineligible for scoring.
//
// Records are immutable once fetched. Commission is normalized to the
// Commission type at ingestion - see the solscan package.
type ValidatorRecord struct {
	Name       string
	VotePubkey string

	Commission  *Commission
	APYPercent  *float64
	CreditScore *float64

	// ActiveStakeLamports is display-only and plays no part in scoring.
	ActiveStakeLamports uint64
}

// ScoredValidator is a ValidatorRecord plus its derived score
// (higher is better). Never mutated after creation.
type ScoredValidator struct {
	ValidatorRecord
	Score float64
}

func (v ValidatorRecord) scorable() bool {
	return v.Commission != nil && v.APYPercent != nil && v.CreditScore != nil
}

// RankValidators scores every eligible record and returns the best topN in
// descending score order. Records missing commission, APY or credit score
// are silently dropped. Ties keep their input order, and fewer than topN
// eligible records returns just those - no padding.
//
// The commission enters the formula in percentage points (0-100), unlike
// CalculateAPY which consumes the fraction; the Commission type carries
// both so callers can't mix the units up.
//
// The input slice is never modified; calling twice on the same records
// yields identical output.
func RankValidators(records []ValidatorRecord, topN int) []ScoredValidator {
	if topN <= 0 {
		return nil
	}

	scored := make([]ScoredValidator, 0, len(records))
	for _, rec := range records {
		if !rec.scorable() {
			continue
		}
		score := *rec.APYPercent*WeightAPY +
			(100-rec.Commission.Percent())*WeightCommission +
			*rec.CreditScore*WeightCredit
		scored = append(scored, ScoredValidator{ValidatorRecord: rec, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
