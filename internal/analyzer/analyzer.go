// Package analyzer orchestrates the staking analysis: it gathers network
// inputs from the external sources, runs the staking calculators over them
// and assembles the report artifacts.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mailgun/holster/v4/syncutil"

	"github.com/stakeseer/solstake/internal/lib/coingecko"
	"github.com/stakeseer/solstake/internal/lib/misc"
	"github.com/stakeseer/solstake/internal/lib/solscan"
	"github.com/stakeseer/solstake/internal/report"
	"github.com/stakeseer/solstake/internal/staking"
)

// ValidatorFetchLimit is how many validators to pull before ranking; we
// fetch broadly and then keep only the requested top N.
const ValidatorFetchLimit = 200

type Analyzer struct {
	logger *slog.Logger
	prices *coingecko.Client
	chain  *solscan.Client
}

func New(logger *slog.Logger, prices *coingecko.Client, chain *solscan.Client) *Analyzer {
	return &Analyzer{logger: logger, prices: prices, chain: chain}
}

// NetworkSnapshot is one consistent set of inputs for a calculation run.
type NetworkSnapshot struct {
	PriceUSD      float64
	InflationRate float64
	Validators    []staking.ValidatorRecord
}

// Snapshot fetches price, network stats and the validator list concurrently.
// Each source degrades independently: a failed fetch is logged and replaced
// with its default (price 0, inflation fallback, no validators) so the
// calculators downstream never see an I/O error, only degraded inputs.
func (a *Analyzer) Snapshot(ctx context.Context) NetworkSnapshot {
	snap := NetworkSnapshot{InflationRate: solscan.DefaultInflationRate}

	fanOut := syncutil.NewFanOut(3)
	fanOut.Run(func(any) error {
		price, err := a.prices.SolPriceUSD(ctx)
		if err != nil {
			misc.Warnf(a.logger, "price source unavailable, using 0.0, error:%v", err)
			return nil
		}
		snap.PriceUSD = price
		return nil
	}, nil)
	fanOut.Run(func(any) error {
		stats, err := a.chain.NetworkStats(ctx)
		if err != nil {
			misc.Warnf(a.logger, "stats source unavailable, assuming %.0f%% inflation, error:%v",
				solscan.DefaultInflationRate*100, err)
			return nil
		}
		snap.InflationRate = solscan.InflationRate(stats)
		return nil
	}, nil)
	fanOut.Run(func(any) error {
		validators, err := a.chain.Validators(ctx, ValidatorFetchLimit)
		if err != nil {
			misc.Warnf(a.logger, "validator source unavailable, continuing without rankings, error:%v", err)
			return nil
		}
		snap.Validators = validators
		return nil
	}, nil)
	fanOut.Wait()

	promSolPriceUSD.Set(snap.PriceUSD)
	promInflationRate.Set(snap.InflationRate)
	promValidatorsTracked.Set(float64(len(snap.Validators)))

	return snap
}

// Refresh re-snapshots the network and re-ranks validators, purely for the
// side effect of updating the exported gauges. Used by daemon mode.
func (a *Analyzer) Refresh(ctx context.Context) {
	snap := a.Snapshot(ctx)
	if top := staking.RankValidators(snap.Validators, 1); len(top) > 0 {
		promTopValidatorScore.Set(top[0].Score)
	}
}

type ReportRequest struct {
	AmountSOL     float64
	Days          int
	TopValidators int
	OutDir        string
	// BaseName, when set, fixes the output filenames to <BaseName>.md and
	// <BaseName>.png instead of the default timestamped names.
	BaseName string
}

type ReportResult struct {
	ReportPath string
	ChartPath  string
	Snapshot   NetworkSnapshot
}

// GenerateReport runs the full analysis and writes the markdown report and
// projection chart to disk.
func (a *Analyzer) GenerateReport(ctx context.Context, req ReportRequest) (ReportResult, error) {
	if req.AmountSOL == 0 {
		return ReportResult{}, staking.ErrZeroPrincipal
	}

	snap := a.Snapshot(ctx)
	top := staking.RankValidators(snap.Validators, req.TopValidators)
	if len(top) > 0 {
		promTopValidatorScore.Set(top[0].Score)
	}

	var (
		scenarios []report.ScenarioProjection
		chartAPY  float64
	)
	for _, sc := range staking.DefaultScenarios() {
		apy := staking.CalculateAPY(snap.InflationRate, sc.Commission)
		proj, err := staking.CalculateReturns(req.AmountSOL, apy, req.Days, snap.PriceUSD)
		if err != nil {
			return ReportResult{}, fmt.Errorf("projecting %s scenario: %w", sc.Name, err)
		}
		scenarios = append(scenarios, report.ScenarioProjection{
			Scenario:   sc,
			APYPercent: apy,
			Projection: proj,
		})
		// the chart tracks the middle-of-the-road scenario
		if sc.Name == "average" {
			chartAPY = apy
		}
	}

	reportName, chartName := outputNames(req.BaseName, time.Now())
	chartPath := filepath.Join(req.OutDir, chartName)
	reportPath := filepath.Join(req.OutDir, reportName)

	// Render both artifacts before touching disk so a late failure can't
	// leave a chart behind without its report.
	png, err := report.ProjectionChart(req.AmountSOL, chartAPY, req.Days, snap.PriceUSD)
	if err != nil {
		return ReportResult{}, fmt.Errorf("rendering projection chart: %w", err)
	}
	doc := report.Render(report.Data{
		GeneratedAt:   time.Now(),
		AmountSOL:     req.AmountSOL,
		Days:          req.Days,
		PriceUSD:      snap.PriceUSD,
		InflationRate: snap.InflationRate,
		Scenarios:     scenarios,
		TopValidators: top,
		ChartFilename: chartName,
	})

	if err := os.WriteFile(chartPath, png, 0o644); err != nil {
		return ReportResult{}, fmt.Errorf("writing chart: %w", err)
	}
	if err := os.WriteFile(reportPath, []byte(doc), 0o644); err != nil {
		_ = os.Remove(chartPath)
		return ReportResult{}, fmt.Errorf("writing report: %w", err)
	}

	misc.Infof(a.logger, "report written to:%s", reportPath)
	return ReportResult{ReportPath: reportPath, ChartPath: chartPath, Snapshot: snap}, nil
}

func outputNames(baseName string, now time.Time) (reportName, chartName string) {
	if baseName != "" {
		return baseName + ".md", baseName + ".png"
	}
	ts := now.Format("20060102_150405")
	return fmt.Sprintf("solana_staking_report_%s.md", ts),
		fmt.Sprintf("solana_staking_projection_%s.png", ts)
}
