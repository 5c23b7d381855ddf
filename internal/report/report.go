// Package report turns staking projections and validator rankings into the
// human-readable artifacts: a markdown document and a PNG projection chart.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakeseer/solstake/internal/staking"
)

// lamportsPerBillionDisplay scales raw active-stake units for the validator
// table, shown as "X.XX B SOL" to keep the column compact.
var lamportsPerBillionDisplay = decimal.NewFromInt(1_000_000_000)

// ScenarioProjection pairs a commission scenario with the APY it yields and
// the resulting projection.
type ScenarioProjection struct {
	Scenario   staking.Scenario
	APYPercent float64
	Projection staking.ReturnsProjection
}

// Data is everything the markdown report needs, already computed.
type Data struct {
	GeneratedAt   time.Time
	AmountSOL     float64
	Days          int
	PriceUSD      float64
	InflationRate float64
	Scenarios     []ScenarioProjection
	TopValidators []staking.ScoredValidator
	ChartFilename string
}

// Render produces the full markdown report.
func Render(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Solana Staking Analysis Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Initial Investment\n")
	fmt.Fprintf(&b, "- Amount: %v SOL\n", d.AmountSOL)
	fmt.Fprintf(&b, "- Current Value: %s USD\n", usd(d.AmountSOL*d.PriceUSD))
	fmt.Fprintf(&b, "- Time Period: %d days\n\n", d.Days)

	fmt.Fprintf(&b, "## Network Statistics\n")
	fmt.Fprintf(&b, "- Current Inflation Rate: %.2f%%\n", d.InflationRate*100)
	fmt.Fprintf(&b, "- Current SOL Price: %s USD\n\n", usd(d.PriceUSD))

	fmt.Fprintf(&b, "## Projected Returns\n\n")
	for _, sc := range d.Scenarios {
		fmt.Fprintf(&b, "### %s Estimate (%s)\n", titleCase(sc.Scenario.Name), sc.Scenario.Description)
		fmt.Fprintf(&b, "- APY: %.2f%%\n", sc.APYPercent)
		fmt.Fprintf(&b, "- SOL after %d days: %.4f\n", d.Days, sc.Projection.FinalSOL)
		fmt.Fprintf(&b, "- SOL earned: %.4f\n", sc.Projection.EarnedSOL)
		fmt.Fprintf(&b, "- Projected Value: %s USD\n", usd(sc.Projection.ProjectedValueUSD))
		fmt.Fprintf(&b, "- ROI: %.2f%%\n\n", sc.Projection.ROIPercent)
	}

	fmt.Fprintf(&b, "## Top Recommended Validators\n\n")
	if len(d.TopValidators) == 0 {
		fmt.Fprintf(&b, "No validator data available\n\n")
	} else {
		b.WriteString(ValidatorTable(d.TopValidators))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	fmt.Fprintf(&b, "1. Consider spreading your stake across 2-3 validators to reduce risk.\n")
	fmt.Fprintf(&b, "2. Re-evaluate your staking strategy every 3 months.\n")
	fmt.Fprintf(&b, "3. Monitor validator performance and commission changes.\n")
	fmt.Fprintf(&b, "4. Check for any upcoming network upgrades that might affect staking.\n\n")

	fmt.Fprintf(&b, "## Visualization\n\n")
	fmt.Fprintf(&b, "See the attached file: %s\n", d.ChartFilename)

	return b.String()
}

// ValidatorTable renders the ranked validators as an aligned text table.
func ValidatorTable(scored []staking.ScoredValidator) string {
	out := new(strings.Builder)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Name\tVote Pubkey\tCommission\tAPY\tActive Stake\tCredit Score\tScore\t")
	for _, v := range scored {
		fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%.2f%%\t%s\t%.0f\t%.2f\t\n",
			displayName(v.ValidatorRecord), v.VotePubkey,
			v.Commission.Percent(), *v.APYPercent,
			formattedStake(v.ActiveStakeLamports), *v.CreditScore, v.Score)
	}
	tw.Flush()
	return out.String()
}

func displayName(rec staking.ValidatorRecord) string {
	if rec.Name != "" {
		return rec.Name
	}
	return "(unnamed)"
}

func formattedStake(lamports uint64) string {
	stake := decimal.NewFromInt(int64(lamports)).Div(lamportsPerBillionDisplay)
	return stake.StringFixed(2) + " B SOL"
}

func usd(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
