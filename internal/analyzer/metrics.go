package analyzer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promSolPriceUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: "solstake",
		Name:      "sol_price_usd",
	})
	promInflationRate = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: "solstake",
		Name:      "network_inflation_rate",
	})
	promValidatorsTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: "solstake",
		Name:      "validators_tracked",
	})
	promTopValidatorScore = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: "solstake",
		Name:      "top_validator_score",
	})
)
