package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stakeseer/solstake/internal/staking"
)

// chartIntervalDays is the sampling step for projection series.
const chartIntervalDays = 30

var (
	solSeriesColor = drawing.ColorFromHex("00ffa3")
	usdSeriesColor = drawing.ColorFromHex("2563eb")
)

// ProjectionChart renders projected SOL growth (primary axis) and USD value
// (secondary axis) sampled every 30 days over the horizon, as PNG bytes.
func ProjectionChart(amount, apyPercent float64, days int, priceUSD float64) ([]byte, error) {
	xs, solValues, usdValues, err := projectionSeries(amount, apyPercent, days, priceUSD)
	if err != nil {
		return nil, err
	}

	graph := chart.Chart{
		Title:          "Projected Staking Returns Over Time",
		XAxis:          chart.XAxis{Name: "Days"},
		YAxis:          chart.YAxis{Name: "SOL Amount"},
		YAxisSecondary: chart.YAxis{Name: "USD Value"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Projected SOL",
				XValues: xs,
				YValues: solValues,
				Style: chart.Style{
					StrokeColor: solSeriesColor,
					FillColor:   solSeriesColor.WithAlpha(76),
				},
			},
			chart.ContinuousSeries{
				Name:    "Projected USD Value",
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: usdValues,
				Style: chart.Style{
					StrokeColor: usdSeriesColor,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return buf.Bytes(), nil
}

func projectionSeries(amount, apyPercent float64, days int, priceUSD float64) (xs, solValues, usdValues []float64, err error) {
	for day := 0; ; day += chartIntervalDays {
		if day > days {
			day = days
		}
		proj, perr := staking.CalculateReturns(amount, apyPercent, day, priceUSD)
		if perr != nil {
			return nil, nil, nil, perr
		}
		xs = append(xs, float64(day))
		solValues = append(solValues, proj.FinalSOL)
		usdValues = append(usdValues, proj.ProjectedValueUSD)
		if day == days {
			break
		}
	}
	// a single sample can't span an x axis; extend the point into a flat line
	if len(xs) == 1 {
		xs = append(xs, 1)
		solValues = append(solValues, solValues[0])
		usdValues = append(usdValues, usdValues[0])
	}
	return xs, solValues, usdValues, nil
}
