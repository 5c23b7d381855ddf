package analyzer_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeseer/solstake/internal/analyzer"
	"github.com/stakeseer/solstake/internal/lib/coingecko"
	"github.com/stakeseer/solstake/internal/lib/solscan"
	"github.com/stakeseer/solstake/internal/staking"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAnalyzer(t *testing.T, priceHandler, chainHandler http.HandlerFunc) *analyzer.Analyzer {
	t.Helper()
	priceSrv := httptest.NewServer(priceHandler)
	t.Cleanup(priceSrv.Close)
	chainSrv := httptest.NewServer(chainHandler)
	t.Cleanup(chainSrv.Close)

	logger := discardLogger()
	prices := coingecko.NewClientWithHTTP(logger, priceSrv.Client(), priceSrv.URL)
	chain := solscan.NewClientWithHTTP(logger, chainSrv.Client(), chainSrv.URL, "")
	return analyzer.New(logger, prices, chain)
}

func healthyChainHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/network/stats":
			fmt.Fprint(w, `{"inflation":0.07}`)
		case "/v1/validators":
			fmt.Fprint(w, `{"data":[
				{"name":"Alpha","votePubkey":"alpha-key","commission":0,"apy":8.5,"creditScore":99,"totalActiveStake":2000000000},
				{"name":"Beta","votePubkey":"beta-key","commission":10,"apy":7.0,"creditScore":80,"totalActiveStake":1000000000},
				{"name":"Broken","votePubkey":"broken-key","commission":5,"apy":7.5}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}
}

func healthyPriceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"solana":{"usd":100}}`)
	}
}

func failingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func TestSnapshotGathersAllSources(t *testing.T) {
	a := newTestAnalyzer(t, healthyPriceHandler(), healthyChainHandler())

	snap := a.Snapshot(context.Background())
	assert.InDelta(t, 100.0, snap.PriceUSD, 1e-9)
	assert.InDelta(t, 0.07, snap.InflationRate, 1e-9)
	assert.Len(t, snap.Validators, 3)
}

func TestSnapshotDegradesPerSource(t *testing.T) {
	a := newTestAnalyzer(t, failingHandler(), healthyChainHandler())
	snap := a.Snapshot(context.Background())
	assert.Equal(t, 0.0, snap.PriceUSD, "failed price source degrades to 0")
	assert.InDelta(t, 0.07, snap.InflationRate, 1e-9, "healthy sources are unaffected")
	assert.Len(t, snap.Validators, 3)

	a = newTestAnalyzer(t, healthyPriceHandler(), failingHandler())
	snap = a.Snapshot(context.Background())
	assert.InDelta(t, 100.0, snap.PriceUSD, 1e-9)
	assert.InDelta(t, solscan.DefaultInflationRate, snap.InflationRate, 1e-9, "failed stats source degrades to the default inflation")
	assert.Empty(t, snap.Validators, "failed validator source degrades to an empty sequence")
}

func TestGenerateReportWritesArtifacts(t *testing.T) {
	a := newTestAnalyzer(t, healthyPriceHandler(), healthyChainHandler())

	outDir := t.TempDir()
	res, err := a.GenerateReport(context.Background(), analyzer.ReportRequest{
		AmountSOL:     10,
		Days:          365,
		TopValidators: 5,
		OutDir:        outDir,
		BaseName:      "analysis",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "analysis.md"), res.ReportPath)
	assert.Equal(t, filepath.Join(outDir, "analysis.png"), res.ChartPath)

	doc, err := os.ReadFile(res.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "# Solana Staking Analysis Report")
	assert.Contains(t, string(doc), "Alpha")
	assert.NotContains(t, string(doc), "Broken", "unscorable validators must not be recommended")
	assert.Contains(t, string(doc), "See the attached file: analysis.png")

	png, err := os.ReadFile(res.ChartPath)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGenerateReportFailedWriteLeavesNoArtifacts(t *testing.T) {
	a := newTestAnalyzer(t, healthyPriceHandler(), healthyChainHandler())

	// A directory squatting on the report path makes the report write fail
	// after the chart has already been written.
	outDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(outDir, "analysis.md"), 0o755))

	_, err := a.GenerateReport(context.Background(), analyzer.ReportRequest{
		AmountSOL:     10,
		Days:          365,
		TopValidators: 5,
		OutDir:        outDir,
		BaseName:      "analysis",
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(outDir, "analysis.png"))
	assert.True(t, os.IsNotExist(statErr), "a failed report must not leave its chart behind")
}

func TestGenerateReportZeroAmount(t *testing.T) {
	a := newTestAnalyzer(t, healthyPriceHandler(), healthyChainHandler())

	_, err := a.GenerateReport(context.Background(), analyzer.ReportRequest{
		AmountSOL: 0,
		Days:      365,
		OutDir:    t.TempDir(),
	})
	require.ErrorIs(t, err, staking.ErrZeroPrincipal)
}
